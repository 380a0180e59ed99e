// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// Field length limits, matching the column sizes.
const (
	MaxEmailLength    = 255
	MaxUsernameLength = 50
	MaxFullNameLength = 100
	MaxTitleLength    = 255
	MaxPostSlugLength = 255
	MaxCategoryLength = 100
)

// ValidateLength checks that value has between min and max characters. A max of
// zero means no upper bound.
func ValidateLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		if min == 1 {
			return fmt.Errorf("%s is required", field)
		}
		return fmt.Errorf("%s must be at least %d characters long", field, min)
	}
	if max > 0 && n > max {
		return fmt.Errorf("%s must not exceed %d characters", field, max)
	}
	return nil
}

// ValidateEmail checks that email is a single bare address such as a@x.com.
func ValidateEmail(email string) error {
	if err := ValidateLength("email", email, 1, MaxEmailLength); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return fmt.Errorf("email %q is not a valid address", email)
	}
	return nil
}

// ValidateUsername checks the username length.
func ValidateUsername(username string) error {
	return ValidateLength("username", username, 1, MaxUsernameLength)
}
