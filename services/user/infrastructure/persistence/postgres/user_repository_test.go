package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/blogs/pkg/database"
	"github.com/ghuser/blogs/pkg/logger"
	userdomain "github.com/ghuser/blogs/services/user/domain"
	"github.com/ghuser/blogs/services/user/domain/models"
)

func newTestRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewUserRepository(database.New(sqlDB, database.DefaultOptions(), logger.Discard())), mock
}

func TestUserRepository_Insert(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	user := &models.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: []byte("hash"), CreatedAt: now}

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"inserted", nil, nil},
		{"duplicate email", &pgconn.PgError{Code: "23505"}, userdomain.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
				WithArgs(user.ID, "ada@example.com", []byte("hash"), now)
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.Insert(context.Background(), user)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow(id.String(), "ada@example.com", []byte("hash"), now))

		got, err := repo.GetByEmail(context.Background(), "ada@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := &models.User{ID: id, Email: "ada@example.com", PasswordHash: []byte("hash"), CreatedAt: now}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("user mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, userdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
