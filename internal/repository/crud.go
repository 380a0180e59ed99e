package repository

import "context"

// CRUD is the operation set every entity repository exposes.
type CRUD[T Entity] interface {
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id uint, fields Fields) (*T, error)
	Delete(ctx context.Context, id uint) (*T, error)
}
