package service

import (
	"context"

	"blogcms/internal/models"
	"blogcms/internal/repository"
	"blogcms/internal/validation"
)

const (
	msgPostSlugTaken   = "Post with this slug already exists"
	msgAuthorNotFound  = "Author not found"
	msgCategoryMissing = "Category not found"
)

var postConflicts = map[string]string{
	"slug": msgPostSlugTaken,
}

// PostService handles post business logic.
type PostService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

type CreatePostInput struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     *string
	IsPublished bool
	CategoryID  *uint
}

// UpdatePostInput carries the post fields to change. A nil CategoryID means the
// category is not being changed; it cannot be used to clear the category.
type UpdatePostInput struct {
	Title       *string
	Slug        *string
	Content     *string
	Excerpt     *string
	IsPublished *bool
	CategoryID  *uint
}

// NewPostService creates a new post service
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func validatePostText(field, value string, maxLen int) error {
	if err := validation.ValidateLength(field, value, 1, maxLen); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

func validatePostContent(content string) error {
	if err := validation.ValidateLength("content", content, 1, 0); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

func (s *PostService) ensureCategory(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	category, err := s.categoryRepo.Get(ctx, *id)
	if err != nil {
		return err
	}
	if category == nil {
		return models.NewValidationError(msgCategoryMissing)
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, authorID uint, in CreatePostInput) (*models.Post, error) {
	if err := validatePostText("title", in.Title, validation.MaxTitleLength); err != nil {
		return nil, err
	}
	if err := validatePostText("slug", in.Slug, validation.MaxPostSlugLength); err != nil {
		return nil, err
	}
	if err := validatePostContent(in.Content); err != nil {
		return nil, err
	}

	author, err := s.userRepo.Get(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewValidationError(msgAuthorNotFound)
	}
	if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	existing, err := s.postRepo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError(msgPostSlugTaken, nil)
	}

	post, err := s.postRepo.CreateWithAuthor(ctx, &models.Post{
		Title:       in.Title,
		Slug:        in.Slug,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		IsPublished: in.IsPublished,
		CategoryID:  in.CategoryID,
	}, authorID)
	if err != nil {
		return nil, conflictOrError(err, postConflicts, msgPostSlugTaken)
	}
	return post, nil
}

// ListPosts returns posts with their author and category, optionally only the
// published ones.
func (s *PostService) ListPosts(ctx context.Context, skip, limit int, publishedOnly bool) ([]models.Post, error) {
	if publishedOnly {
		return s.postRepo.ListPublished(ctx, skip, limit)
	}
	return s.postRepo.ListWithAuthor(ctx, skip, limit)
}

// GetPost counts a view and returns the post as it stands after the increment.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.IncrementViewCount(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("Post", id)
	}
	return post, nil
}

func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &models.AppError{Code: models.CodeNotFound, Message: "Post not found"}
	}
	return s.GetPost(ctx, post.ID)
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("Post", id)
	}

	fields := repository.Fields{}
	if in.Title != nil {
		if err := validatePostText("title", *in.Title, validation.MaxTitleLength); err != nil {
			return nil, err
		}
		fields["title"] = *in.Title
	}
	if in.Slug != nil && *in.Slug != post.Slug {
		if err := validatePostText("slug", *in.Slug, validation.MaxPostSlugLength); err != nil {
			return nil, err
		}
		existing, err := s.postRepo.GetBySlug(ctx, *in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError(msgPostSlugTaken, nil)
		}
		fields["slug"] = *in.Slug
	}
	if in.Content != nil {
		if err := validatePostContent(*in.Content); err != nil {
			return nil, err
		}
		fields["content"] = *in.Content
	}
	if in.Excerpt != nil {
		fields["excerpt"] = *in.Excerpt
	}
	if in.IsPublished != nil {
		fields["is_published"] = *in.IsPublished
	}
	if in.CategoryID != nil {
		if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
			return nil, err
		}
		fields["category_id"] = *in.CategoryID
	}

	updated, err := s.postRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, conflictOrError(err, postConflicts, msgPostSlugTaken)
	}
	if updated == nil {
		return nil, notFound("Post", id)
	}
	return updated, nil
}

// DeletePost removes the post; its comments go with it through the foreign key.
func (s *PostService) DeletePost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("Post", id)
	}
	return post, nil
}
