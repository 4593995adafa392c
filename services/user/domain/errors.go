package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates no user exists for the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another user already registered the email.
	ErrEmailTaken = errors.New("email has already been taken")

	// ErrInvalidCredentials indicates the email or password did not match.
	// Deliberately does not say which.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidUser indicates submitted fields violate user constraints.
	ErrInvalidUser = errors.New("invalid user")
)

// FieldError rejects a single sign-up field. It matches ErrInvalidUser under
// errors.Is and carries the message the 422 fields body reports.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return ErrInvalidUser.Error() + ": " + e.Field + " " + e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidUser
}

// FieldErrors returns the rejected field and its message.
func (e *FieldError) FieldErrors() map[string]string {
	return map[string]string{e.Field: e.Message}
}
