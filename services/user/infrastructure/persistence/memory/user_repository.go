// Package memory provides a process-local UserRepository for development and
// tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ghuser/blogs/pkg/database"
	userdomain "github.com/ghuser/blogs/services/user/domain"
	"github.com/ghuser/blogs/services/user/domain/models"
	"github.com/ghuser/blogs/services/user/domain/repositories"
)

var _ repositories.UserRepository = (*UserRepository)(nil)

// UserRepository implements repositories.UserRepository in memory, keyed by
// normalized email.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[models.Email]models.User
}

// NewUserRepository returns an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[models.Email]models.User)}
}

// Insert stores a copy of user. Returns ErrEmailTaken for a registered email.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", database.ErrTimeout, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return userdomain.ErrEmailTaken
	}
	u := *user
	u.PasswordHash = append([]byte(nil), user.PasswordHash...)
	r.byEmail[user.Email] = u
	return nil
}

// GetByEmail returns a copy of the stored user.
func (r *UserRepository) GetByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", database.ErrTimeout, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	u.PasswordHash = append([]byte(nil), u.PasswordHash...)
	return &u, nil
}
