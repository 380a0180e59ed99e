package repository

import (
	"context"

	"blogcms/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	CRUD[models.Category]
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
}

type categoryRepository struct {
	*Repository[models.Category]
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{Repository: NewRepository[models.Category](db)}
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.FindOne(ctx, "get_by_slug", "slug = ?", slug)
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return r.FindOne(ctx, "get_by_name", "name = ?", name)
}
