package service

import (
	"context"
	"errors"
	"testing"

	"blogcms/internal/models"
	"blogcms/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crudStub is a stub for repository.CRUD. Unset funcs report absent.
type crudStub[T repository.Entity] struct {
	getFn    func(context.Context, uint) (*T, error)
	listFn   func(context.Context, int, int) ([]T, error)
	createFn func(context.Context, *T) (*T, error)
	updateFn func(context.Context, uint, repository.Fields) (*T, error)
	deleteFn func(context.Context, uint) (*T, error)
}

func (s *crudStub[T]) Get(ctx context.Context, id uint) (*T, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}
func (s *crudStub[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	if s.listFn == nil {
		return []T{}, nil
	}
	return s.listFn(ctx, skip, limit)
}
func (s *crudStub[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if s.createFn == nil {
		return entity, nil
	}
	return s.createFn(ctx, entity)
}
func (s *crudStub[T]) Update(ctx context.Context, id uint, fields repository.Fields) (*T, error) {
	if s.updateFn == nil {
		return nil, nil
	}
	return s.updateFn(ctx, id, fields)
}
func (s *crudStub[T]) Delete(ctx context.Context, id uint) (*T, error) {
	if s.deleteFn == nil {
		return nil, nil
	}
	return s.deleteFn(ctx, id)
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	crudStub[models.User]
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn == nil {
		return nil, nil
	}
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn == nil {
		return nil, nil
	}
	return s.getByUsernameFn(ctx, username)
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	crudStub[models.Category]
	getBySlugFn func(context.Context, string) (*models.Category, error)
	getByNameFn func(context.Context, string) (*models.Category, error)
}

func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if s.getBySlugFn == nil {
		return nil, nil
	}
	return s.getBySlugFn(ctx, slug)
}
func (s *categoryRepoStub) GetByName(ctx context.Context, name string) (*models.Category, error) {
	if s.getByNameFn == nil {
		return nil, nil
	}
	return s.getByNameFn(ctx, name)
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	crudStub[models.Post]
	getBySlugFn        func(context.Context, string) (*models.Post, error)
	listWithAuthorFn   func(context.Context, int, int) ([]models.Post, error)
	listPublishedFn    func(context.Context, int, int) ([]models.Post, error)
	createWithAuthorFn func(context.Context, *models.Post, uint) (*models.Post, error)
	incrementFn        func(context.Context, uint) (*models.Post, error)
}

func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	if s.getBySlugFn == nil {
		return nil, nil
	}
	return s.getBySlugFn(ctx, slug)
}
func (s *postRepoStub) GetWithRelations(ctx context.Context, id uint) (*models.Post, error) {
	return s.Get(ctx, id)
}
func (s *postRepoStub) ListWithAuthor(ctx context.Context, skip, limit int) ([]models.Post, error) {
	if s.listWithAuthorFn == nil {
		return []models.Post{}, nil
	}
	return s.listWithAuthorFn(ctx, skip, limit)
}
func (s *postRepoStub) ListPublished(ctx context.Context, skip, limit int) ([]models.Post, error) {
	if s.listPublishedFn == nil {
		return []models.Post{}, nil
	}
	return s.listPublishedFn(ctx, skip, limit)
}
func (s *postRepoStub) CreateWithAuthor(ctx context.Context, post *models.Post, authorID uint) (*models.Post, error) {
	if s.createWithAuthorFn == nil {
		post.AuthorID = authorID
		return post, nil
	}
	return s.createWithAuthorFn(ctx, post, authorID)
}
func (s *postRepoStub) IncrementViewCount(ctx context.Context, id uint) (*models.Post, error) {
	if s.incrementFn == nil {
		return nil, nil
	}
	return s.incrementFn(ctx, id)
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	crudStub[models.Comment]
	getByPostFn        func(context.Context, uint, int, int) ([]models.Comment, error)
	getRepliesFn       func(context.Context, uint, int, int) ([]models.Comment, error)
	createWithAuthorFn func(context.Context, *models.Comment, uint) (*models.Comment, error)
}

func (s *commentRepoStub) GetByPost(ctx context.Context, postID uint, skip, limit int) ([]models.Comment, error) {
	if s.getByPostFn == nil {
		return []models.Comment{}, nil
	}
	return s.getByPostFn(ctx, postID, skip, limit)
}
func (s *commentRepoStub) GetReplies(ctx context.Context, parentID uint, skip, limit int) ([]models.Comment, error) {
	if s.getRepliesFn == nil {
		return []models.Comment{}, nil
	}
	return s.getRepliesFn(ctx, parentID, skip, limit)
}
func (s *commentRepoStub) CreateWithAuthor(ctx context.Context, comment *models.Comment, authorID uint) (*models.Comment, error) {
	if s.createWithAuthorFn == nil {
		comment.AuthorID = authorID
		return comment, nil
	}
	return s.createWithAuthorFn(ctx, comment, authorID)
}

var (
	_ repository.UserRepository     = (*userRepoStub)(nil)
	_ repository.CategoryRepository = (*categoryRepoStub)(nil)
	_ repository.PostRepository     = (*postRepoStub)(nil)
	_ repository.CommentRepository  = (*commentRepoStub)(nil)
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }
func boolPtr(v bool) *bool    { return &v }

func assertAppError(t *testing.T, err error, code string) *models.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeNotFound)
}

// assertConflict asserts a CONFLICT AppError carrying msg.
func assertConflict(t *testing.T, err error, msg string) {
	t.Helper()
	appErr := assertAppError(t, err, models.CodeConflict)
	assert.Equal(t, msg, appErr.Message)
	assert.ErrorIs(t, err, models.ErrConflict)
}
