package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/blogs/pkg/database"
	userdomain "github.com/ghuser/blogs/services/user/domain"
	"github.com/ghuser/blogs/services/user/domain/models"
	"github.com/ghuser/blogs/services/user/domain/repositories"
	"github.com/ghuser/blogs/services/user/infrastructure/persistence/postgres/db"
)

var _ repositories.UserRepository = (*UserRepository)(nil)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given database.
func NewUserRepository(database *database.Database) *UserRepository {
	return &UserRepository{db: database}
}

// Insert persists a new user. Returns ErrEmailTaken on unique constraint violations.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	return r.db.Do(ctx, func(ctx context.Context) error {
		if err := db.New(r.db.DB()).InsertUser(ctx, db.InsertUserParams{
			ID:           user.ID,
			Email:        user.Email.String(),
			PasswordHash: user.PasswordHash,
			CreatedAt:    user.CreatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return userdomain.ErrEmailTaken
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}

// GetByEmail retrieves a user by normalized email. Returns ErrUserNotFound if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	var user *models.User
	err := r.db.Do(ctx, func(ctx context.Context) error {
		row, err := db.New(r.db.DB()).GetUserByEmail(ctx, email.String())
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return userdomain.ErrUserNotFound
			}
			return fmt.Errorf("query user: %w", err)
		}
		user = &models.User{
			ID:           row.ID,
			Email:        models.Email(row.Email),
			PasswordHash: row.PasswordHash,
			CreatedAt:    row.CreatedAt.UTC(),
		}
		return nil
	})
	return user, err
}
