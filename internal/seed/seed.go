// Package seed fills a database with fixture and generated data for
// development and demos.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"blogcms/internal/middleware"
	"blogcms/internal/models"
	"blogcms/internal/observability"
	"blogcms/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers        int
	NumPosts        int
	CommentsPerPost int
	ShouldClean     bool
	RandomSeed      int64
}

// Summary counts the rows a seeding run created.
type Summary struct {
	Categories int
	Users      int
	Posts      int
	Comments   int
}

// Seeder writes through the repositories so seeded rows obey the same rules as
// API writes.
type Seeder struct {
	db         *gorm.DB
	users      repository.UserRepository
	categories repository.CategoryRepository
	posts      repository.PostRepository
	comments   repository.CommentRepository
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:         db,
		users:      repository.NewUserRepository(db),
		categories: repository.NewCategoryRepository(db),
		posts:      repository.NewPostRepository(db),
		comments:   repository.NewCommentRepository(db),
	}
}

// ClearAll removes every blog row, children first.
func (s *Seeder) ClearAll(ctx context.Context) error {
	tables := []string{
		models.Comment{}.TableName(),
		models.Post{}.TableName(),
		models.Category{}.TableName(),
		models.User{}.TableName(),
	}
	for _, table := range tables {
		if err := s.db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// Run loads fixtures, then generates users, posts and comments per opts.
// Fixture rows that already exist are left alone.
func (s *Seeder) Run(ctx context.Context, fixtures *Fixtures, opts Options) (sum *Summary, err error) {
	span, ctx := observability.StartSpan(ctx, "seed.run",
		attribute.Int("seed.users", opts.NumUsers),
		attribute.Int("seed.posts", opts.NumPosts),
	)
	defer func() {
		span.SetError(err)
		if sum != nil {
			span.AddAttributes(attribute.Int("seed.comments", sum.Comments))
		}
		span.End()
	}()

	if opts.ShouldClean {
		if err := s.ClearAll(ctx); err != nil {
			return nil, err
		}
	}

	sum = &Summary{}
	factory := NewFactory(opts.RandomSeed)

	categoryIDs, err := s.seedCategories(ctx, fixtures, sum)
	if err != nil {
		return nil, err
	}

	authors, err := s.seedFixtureUsers(ctx, fixtures, sum)
	if err != nil {
		return nil, err
	}
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.users.Create(ctx, factory.User())
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		authors = append(authors, user.ID)
		sum.Users++
	}
	if len(authors) == 0 {
		return sum, nil
	}

	for i := 0; i < opts.NumPosts; i++ {
		var categoryID *uint
		// One post in five is left uncategorized.
		if len(categoryIDs) > 0 && factory.Intn(5) > 0 {
			id := categoryIDs[factory.Intn(len(categoryIDs))]
			categoryID = &id
		}
		authorID := authors[factory.Intn(len(authors))]
		post, err := s.posts.CreateWithAuthor(ctx, factory.Post(categoryID), authorID)
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		sum.Posts++

		if err := s.seedThread(ctx, factory, post.ID, authors, opts.CommentsPerPost, sum); err != nil {
			return nil, err
		}
	}

	middleware.Logger.InfoContext(ctx, "seed complete",
		slog.Int("categories", sum.Categories),
		slog.Int("users", sum.Users),
		slog.Int("posts", sum.Posts),
		slog.Int("comments", sum.Comments),
	)
	return sum, nil
}

func (s *Seeder) seedCategories(ctx context.Context, fixtures *Fixtures, sum *Summary) ([]uint, error) {
	var ids []uint
	for _, c := range fixtures.Categories {
		existing, err := s.categories.GetBySlug(ctx, c.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			ids = append(ids, existing.ID)
			continue
		}
		category := &models.Category{Name: c.Name, Slug: c.Slug}
		if c.Description != "" {
			desc := c.Description
			category.Description = &desc
		}
		created, err := s.categories.Create(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("create category %q: %w", c.Slug, err)
		}
		ids = append(ids, created.ID)
		sum.Categories++
	}
	return ids, nil
}

func (s *Seeder) seedFixtureUsers(ctx context.Context, fixtures *Fixtures, sum *Summary) ([]uint, error) {
	var ids []uint
	for _, u := range fixtures.Users {
		existing, err := s.users.GetByUsername(ctx, u.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			ids = append(ids, existing.ID)
			continue
		}
		user := &models.User{
			Email:          u.Email,
			Username:       u.Username,
			HashedPassword: u.Password,
			IsActive:       true,
		}
		if u.FullName != "" {
			name := u.FullName
			user.FullName = &name
		}
		created, err := s.users.Create(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("create user %q: %w", u.Username, err)
		}
		ids = append(ids, created.ID)
		sum.Users++
	}
	return ids, nil
}

// seedThread adds n comments to a post; about a third reply to an earlier one.
func (s *Seeder) seedThread(ctx context.Context, factory *Factory, postID uint, authors []uint, n int, sum *Summary) error {
	var ids []uint
	for i := 0; i < n; i++ {
		var parentID *uint
		if len(ids) > 0 && factory.Intn(3) == 0 {
			id := ids[factory.Intn(len(ids))]
			parentID = &id
		}
		comment, err := s.comments.CreateWithAuthor(ctx, factory.Comment(postID, parentID), authors[factory.Intn(len(authors))])
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		ids = append(ids, comment.ID)
		sum.Comments++
	}
	return nil
}
