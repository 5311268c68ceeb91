package users

import "errors"

// ErrUserNotFound is returned when a user lookup finds no matching record.
var ErrUserNotFound = errors.New("user not found")

// IsNotFound checks if error is a user-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
