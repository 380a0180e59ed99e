package service

import (
	"errors"
	"fmt"

	"blogcms/internal/models"
	"blogcms/internal/repository"
)

// conflictOrError turns a unique-index rejection from the store into a conflict
// AppError, using the message registered for the violated column. Other errors
// are returned unchanged.
func conflictOrError(err error, messages map[string]string, fallback string) error {
	var cerr *repository.ConstraintError
	if errors.As(err, &cerr) {
		msg, ok := messages[cerr.Column]
		if !ok {
			msg = fallback
		}
		return models.NewConflictError(msg, err)
	}
	return err
}

func notFound(resource string, key any) error {
	return models.NewNotFoundError(resource, key)
}

func validationf(format string, args ...any) error {
	return models.NewValidationError(fmt.Sprintf(format, args...))
}
