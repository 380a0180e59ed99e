package repository

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"blogcms/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_PublishedAtOnlySetAtCreation(t *testing.T) {
	db := setupTestDB(t)
	f := newFixtures(db)
	ctx := context.Background()

	a := f.user(t, "a@x.com", "a")
	tech := f.category(t, "Technology", "tech")
	p := f.post(t, "hello", a.ID, &tech.ID, false)
	assert.Nil(t, p.PublishedAt)

	updated, err := f.posts.Update(ctx, p.ID, Fields{"is_published": true})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsPublished)
	assert.Nil(t, updated.PublishedAt)
}

func TestPostRepository_CreatePublishedStampsPublishedAt(t *testing.T) {
	db := setupTestDB(t)
	f := newFixtures(db)
	a := f.user(t, "a@x.com", "a")

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &postRepository{Repository: NewRepository[models.Post](db, "Author", "Category"), now: func() time.Time { return fixed }}

	p, err := repo.CreateWithAuthor(context.Background(), &models.Post{
		Title: "Live", Slug: "live", Content: "body", IsPublished: true,
	}, a.ID)
	require.NoError(t, err)
	require.NotNil(t, p.PublishedAt)
	assert.True(t, fixed.Equal(*p.PublishedAt))
	assert.Equal(t, a.ID, p.AuthorID)
	require.NotNil(t, p.Author)
	assert.Equal(t, "a", p.Author.Username)
	assert.Empty(t, p.ViewCount)
}

func TestPostRepository_ReadsEagerLoadRelations(t *testing.T) {
	db := setupTestDB(t)
	f := newFixtures(db)
	ctx := context.Background()
	a := f.user(t, "a@x.com", "a")
	tech := f.category(t, "Technology", "tech")
	p := f.post(t, "hello", a.ID, &tech.ID, true)
	f.post(t, "draft", a.ID, nil, false)

	bySlug, err := f.posts.GetBySlug(ctx, "hello")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	require.NotNil(t, bySlug.Author)
	require.NotNil(t, bySlug.Category)
	assert.Equal(t, "tech", bySlug.Category.Slug)

	withRel, err := f.posts.GetWithRelations(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, withRel.Author)

	all, err := f.posts.ListWithAuthor(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, post := range all {
		require.NotNil(t, post.Author)
		assert.Equal(t, a.ID, post.Author.ID)
	}
	assert.Nil(t, all[1].Category)

	published, err := f.posts.ListPublished(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "hello", published[0].Slug)
	require.NotNil(t, published[0].Category)
}

func TestPostRepository_IncrementViewCountSequential(t *testing.T) {
	db := setupTestDB(t)
	f := newFixtures(db)
	ctx := context.Background()
	a := f.user(t, "a@x.com", "a")
	p := f.post(t, "hello", a.ID, nil, true)

	_, err := f.posts.IncrementViewCount(ctx, p.ID)
	require.NoError(t, err)
	second, err := f.posts.IncrementViewCount(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ViewCount+2, second.ViewCount)
	assert.True(t, p.UpdatedAt.Equal(second.UpdatedAt), "views are not content edits")
}

func TestPostRepository_IncrementViewCountConcurrent(t *testing.T) {
	db := setupTestDB(t)
	f := newFixtures(db)
	ctx := context.Background()
	a := f.user(t, "a@x.com", "a")
	p := f.post(t, "hello", a.ID, nil, true)

	const workers = 25
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.posts.IncrementViewCount(ctx, p.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := f.posts.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, workers, got.ViewCount)
}

func TestPostRepository_IncrementViewCountAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	got, err := repo.IncrementViewCount(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostRepository_DuplicateSlugIsConflict(t *testing.T) {
	db := setupTestDB(t)
	f := newFixtures(db)
	a := f.user(t, "a@x.com", "a")
	f.post(t, "hello", a.ID, nil, false)

	_, err := f.posts.CreateWithAuthor(context.Background(), &models.Post{Title: "Again", Slug: "hello", Content: "x"}, a.ID)
	var cerr *ConstraintError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "slug", cerr.Column)
}

func TestPostRepository_DeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	f := newFixtures(db)
	ctx := context.Background()
	a := f.user(t, "a@x.com", "a")
	b := f.user(t, "b@x.com", "b")
	p := f.post(t, "hello", a.ID, nil, true)
	other := f.post(t, "other", b.ID, nil, true)
	byA := f.comment(t, other.ID, a.ID, nil)
	f.comment(t, p.ID, b.ID, nil)

	_, err := f.users.Delete(ctx, a.ID)
	require.NoError(t, err)

	gone, err := f.posts.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	goneComment, err := f.comments.Get(ctx, byA.ID)
	require.NoError(t, err)
	assert.Nil(t, goneComment)

	kept, err := f.posts.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestPostRepository_IncrementViewCount_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "view_count"=view_count + $1 WHERE id = $2`)).
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	got, err := repo.IncrementViewCount(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
