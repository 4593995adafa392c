package repositories

import (
	"context"

	"github.com/ghuser/blogs/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Insert stores a new user. Returns ErrEmailTaken when the email is
	// already registered.
	Insert(ctx context.Context, user *models.User) error

	// GetByEmail returns ErrUserNotFound when no user has the email.
	GetByEmail(ctx context.Context, email models.Email) (*models.User, error)
}
