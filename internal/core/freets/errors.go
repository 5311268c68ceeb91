package freets

import (
	"errors"
	"fmt"

	"Fritter/internal/core/users"
)

// ErrFreetNotFound is returned when an operation's target freet does not
// exist. Note GetFreet returning (nil, nil) and DeleteFreet returning
// false are normal "nothing to act on" outcomes, not this error; the
// error is reserved for operations whose precondition fails (a reply to a
// missing freet, a listing for an unknown author).
var ErrFreetNotFound = errors.New("freet not found")

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error is a missing freet or missing user
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFreetNotFound) || errors.Is(err, users.ErrUserNotFound)
}
