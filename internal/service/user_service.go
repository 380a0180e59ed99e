package service

import (
	"context"

	"blogcms/internal/models"
	"blogcms/internal/repository"
	"blogcms/internal/validation"
)

const (
	msgEmailTaken    = "Email already registered"
	msgUsernameTaken = "Username already taken"
)

var userConflicts = map[string]string{
	"email":    msgEmailTaken,
	"username": msgUsernameTaken,
}

// UserService handles user business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput is the payload for creating a user. The password is stored
// as given; hashing is out of scope for this service.
type CreateUserInput struct {
	Email    string
	Username string
	FullName *string
	Password string
}

// UpdateUserInput carries the user fields to change; nil fields are left as is.
type UpdateUserInput struct {
	Email    *string
	Username *string
	FullName *string
	Password *string
	IsActive *bool
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func validateFullName(fullName *string) error {
	if fullName == nil {
		return nil
	}
	return validation.ValidateLength("full_name", *fullName, 0, validation.MaxFullNameLength)
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength("password", in.Password, 1, 0); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateFullName(in.FullName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError(msgEmailTaken, nil)
	}
	existing, err = s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError(msgUsernameTaken, nil)
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		Email:          in.Email,
		Username:       in.Username,
		FullName:       in.FullName,
		HashedPassword: in.Password,
		IsActive:       true,
	})
	if err != nil {
		return nil, conflictOrError(err, userConflicts, msgEmailTaken)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	return s.userRepo.List(ctx, skip, limit)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User", id)
	}
	return user, nil
}

// UpdateUser applies the supplied fields. Email and username uniqueness is only
// re-checked when the value actually changes.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := repository.Fields{}
	if in.Email != nil && *in.Email != user.Email {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError(msgEmailTaken, nil)
		}
		fields["email"] = *in.Email
	}
	if in.Username != nil && *in.Username != user.Username {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError(msgUsernameTaken, nil)
		}
		fields["username"] = *in.Username
	}
	if in.FullName != nil {
		if err := validateFullName(in.FullName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["full_name"] = *in.FullName
	}
	if in.Password != nil {
		if err := validation.ValidateLength("password", *in.Password, 1, 0); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["hashed_password"] = *in.Password
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	updated, err := s.userRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, conflictOrError(err, userConflicts, msgEmailTaken)
	}
	if updated == nil {
		return nil, notFound("User", id)
	}
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User", id)
	}
	return user, nil
}
