// Package services contains stateless domain services for the blog bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"

	"github.com/ghuser/blogs/services/blog/domain"
	"github.com/ghuser/blogs/services/blog/domain/models"
)

// ValidateBlogForSave performs the checks every blog must pass before it is
// written, whether new or updated. Field violations are reported as a
// *domain.ValidationError; broken timestamps are internal errors.
func ValidateBlogForSave(blog *models.Blog) error {
	if blog == nil {
		return fmt.Errorf("blog cannot be nil")
	}

	if _, err := models.NewTitle(blog.Title.String()); err != nil {
		return domain.NewValidationError(map[string]string{"title": err.Error()})
	}

	if blog.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	if blog.UpdatedAt.Before(blog.CreatedAt) {
		return fmt.Errorf("updated_at %s precedes created_at %s", blog.UpdatedAt, blog.CreatedAt)
	}

	return nil
}
