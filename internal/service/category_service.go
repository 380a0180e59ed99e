package service

import (
	"context"

	"blogcms/internal/models"
	"blogcms/internal/repository"
	"blogcms/internal/validation"
)

const (
	msgCategorySlugTaken = "Category with this slug already exists"
	msgCategoryNameTaken = "Category with this name already exists"
)

var categoryConflicts = map[string]string{
	"slug": msgCategorySlugTaken,
	"name": msgCategoryNameTaken,
}

// CategoryService handles category business logic.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description *string
}

type UpdateCategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func validateCategoryName(name string) error {
	return validation.ValidateLength("name", name, 1, validation.MaxCategoryLength)
}

func validateCategorySlug(slug string) error {
	return validation.ValidateLength("slug", slug, 1, validation.MaxCategoryLength)
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := validateCategoryName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateCategorySlug(in.Slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.categoryRepo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError(msgCategorySlugTaken, nil)
	}
	existing, err = s.categoryRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError(msgCategoryNameTaken, nil)
	}

	category, err := s.categoryRepo.Create(ctx, &models.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
	})
	if err != nil {
		return nil, conflictOrError(err, categoryConflicts, msgCategorySlugTaken)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, skip, limit int) ([]models.Category, error) {
	return s.categoryRepo.List(ctx, skip, limit)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("Category", id)
	}
	return category, nil
}

func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &models.AppError{Code: models.CodeNotFound, Message: "Category not found"}
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := repository.Fields{}
	if in.Slug != nil && *in.Slug != category.Slug {
		if err := validateCategorySlug(*in.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.categoryRepo.GetBySlug(ctx, *in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError(msgCategorySlugTaken, nil)
		}
		fields["slug"] = *in.Slug
	}
	if in.Name != nil && *in.Name != category.Name {
		if err := validateCategoryName(*in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.categoryRepo.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError(msgCategoryNameTaken, nil)
		}
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}

	updated, err := s.categoryRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, conflictOrError(err, categoryConflicts, msgCategorySlugTaken)
	}
	if updated == nil {
		return nil, notFound("Category", id)
	}
	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("Category", id)
	}
	return category, nil
}
