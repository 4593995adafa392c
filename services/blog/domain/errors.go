package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for the blog domain. Use errors.Is() to check these.
var (
	// ErrBlogNotFound indicates no blog exists for the requested id.
	ErrBlogNotFound = errors.New("blog not found")

	// ErrInvalidBlog indicates submitted fields violate blog constraints.
	ErrInvalidBlog = errors.New("invalid blog")
)

// ValidationError carries a message per rejected field. It matches
// ErrInvalidBlog under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for the given field messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + e.Fields[k]
	}
	return ErrInvalidBlog.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidBlog
}

// FieldErrors returns the per-field messages.
func (e *ValidationError) FieldErrors() map[string]string {
	return e.Fields
}
