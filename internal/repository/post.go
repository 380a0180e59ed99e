package repository

import (
	"context"
	"time"

	"blogcms/internal/models"
	"blogcms/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Every read
// preloads the author and category in the same call.
type PostRepository interface {
	CRUD[models.Post]
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetWithRelations(ctx context.Context, id uint) (*models.Post, error)
	ListWithAuthor(ctx context.Context, skip, limit int) ([]models.Post, error)
	ListPublished(ctx context.Context, skip, limit int) ([]models.Post, error)
	CreateWithAuthor(ctx context.Context, post *models.Post, authorID uint) (*models.Post, error)
	IncrementViewCount(ctx context.Context, id uint) (*models.Post, error)
}

type postRepository struct {
	*Repository[models.Post]
	now func() time.Time
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		Repository: NewRepository[models.Post](db, "Author", "Category"),
		now:        time.Now,
	}
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.FindOne(ctx, "get_by_slug", "slug = ?", slug)
}

func (r *postRepository) GetWithRelations(ctx context.Context, id uint) (*models.Post, error) {
	return r.Get(ctx, id)
}

func (r *postRepository) ListWithAuthor(ctx context.Context, skip, limit int) ([]models.Post, error) {
	return r.ListWhere(ctx, "list_with_author", skip, limit, nil)
}

func (r *postRepository) ListPublished(ctx context.Context, skip, limit int) ([]models.Post, error) {
	return r.ListWhere(ctx, "list_published", skip, limit, "is_published = ?", true)
}

// CreateWithAuthor assigns the author and stamps PublishedAt when the post is
// created already published. Later publication through Update leaves it unset.
func (r *postRepository) CreateWithAuthor(ctx context.Context, post *models.Post, authorID uint) (*models.Post, error) {
	post.AuthorID = authorID
	post.PublishedAt = nil
	if post.IsPublished {
		now := r.now().UTC()
		post.PublishedAt = &now
	}
	return r.Create(ctx, post)
}

// IncrementViewCount adds one to the view count with a single UPDATE, so
// concurrent increments are never lost. updated_at is left alone.
func (r *postRepository) IncrementViewCount(ctx context.Context, id uint) (post *models.Post, err error) {
	ctx, end := r.begin(ctx, "increment_view_count")
	defer func() { end(err, post == nil) }()

	err = r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		var err error
		post, err = r.first(tx, id)
		return err
	})
	if err != nil {
		return nil, r.translate("increment_view_count", err)
	}
	if post != nil {
		observability.ViewCountIncrements.Inc()
	}
	return post, nil
}
