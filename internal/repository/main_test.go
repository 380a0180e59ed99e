package repository

import (
	"context"
	"path/filepath"
	"testing"

	"blogcms/internal/config"
	"blogcms/internal/database"
	"blogcms/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB returns a migrated SQLite database in a temp dir, closed at cleanup.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Env:                      "test",
		DBDriver:                 config.DriverSQLite,
		DBSQLitePath:             filepath.Join(t.TempDir(), "repo.db"),
		DBConnMaxLifetimeMinutes: 5,
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

type fixtures struct {
	users      UserRepository
	categories CategoryRepository
	posts      PostRepository
	comments   CommentRepository
}

func newFixtures(db *gorm.DB) fixtures {
	return fixtures{
		users:      NewUserRepository(db),
		categories: NewCategoryRepository(db),
		posts:      NewPostRepository(db),
		comments:   NewCommentRepository(db),
	}
}

func newUser(email, username string) *models.User {
	return &models.User{
		Email:          email,
		Username:       username,
		HashedPassword: "not-hashed",
		IsActive:       true,
	}
}

func idOf[T Entity](e *T) uint {
	if e == nil {
		return 0
	}
	return (*e).GetID()
}

func (f fixtures) user(t *testing.T, email, username string) *models.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), newUser(email, username))
	require.NoError(t, err)
	return u
}

func (f fixtures) category(t *testing.T, name, slug string) *models.Category {
	t.Helper()
	c, err := f.categories.Create(context.Background(), &models.Category{Name: name, Slug: slug})
	require.NoError(t, err)
	return c
}

func (f fixtures) post(t *testing.T, slug string, authorID uint, categoryID *uint, published bool) *models.Post {
	t.Helper()
	p, err := f.posts.CreateWithAuthor(context.Background(), &models.Post{
		Title:       "Title " + slug,
		Slug:        slug,
		Content:     "content of " + slug,
		IsPublished: published,
		CategoryID:  categoryID,
	}, authorID)
	require.NoError(t, err)
	return p
}

func (f fixtures) comment(t *testing.T, postID, authorID uint, parentID *uint) *models.Comment {
	t.Helper()
	c, err := f.comments.CreateWithAuthor(context.Background(), &models.Comment{
		Content:  "a comment",
		PostID:   postID,
		ParentID: parentID,
	}, authorID)
	require.NoError(t, err)
	return c
}
