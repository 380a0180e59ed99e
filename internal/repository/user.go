package repository

import (
	"context"

	"blogcms/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
// Email and username lookups are exact matches under the store's collation: the
// PostgreSQL default and SQLite's BINARY collation both compare case-sensitively.
type UserRepository interface {
	CRUD[models.User]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	*Repository[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{Repository: NewRepository[models.User](db)}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.FindOne(ctx, "get_by_email", "email = ?", email)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.FindOne(ctx, "get_by_username", "username = ?", username)
}
