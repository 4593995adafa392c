package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/blogs/pkg/logger"
	"github.com/ghuser/blogs/pkg/mail"
	userdomain "github.com/ghuser/blogs/services/user/domain"
	"github.com/ghuser/blogs/services/user/infrastructure/persistence/memory"
)

type failingMailer struct{}

func (failingMailer) Deliver(context.Context, mail.Message) error {
	return errors.New("smtp down")
}

func newTestService(mailer mail.Mailer) *UserService {
	svc := NewUserService(memory.NewUserRepository(), mailer, logger.Discard())
	svc.cost = bcrypt.MinCost
	return svc
}

func TestUserService_SignUpSendsWelcomeMail(t *testing.T) {
	outbox := mail.NewOutbox("no-reply@blogs.local", 0)
	svc := newTestService(outbox)

	user, err := svc.SignUp(context.Background(), " Ada@Example.com ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email.String())
	assert.NotEqual(t, "correct horse", string(user.PasswordHash))

	msgs := outbox.List()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ada@example.com", msgs[0].To)
	assert.Equal(t, "Welcome to Blogs", msgs[0].Subject)
	assert.True(t, strings.HasPrefix(msgs[0].Markdown, "# Welcome to Blogs"))
}

func TestUserService_SignUpErrors(t *testing.T) {
	svc := newTestService(mail.NewOutbox("", 0))
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "not-an-email", "correct horse")
	assert.ErrorIs(t, err, userdomain.ErrInvalidUser)
	var fe *userdomain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "email", fe.Field)

	// 30 three-byte runes: within 72 characters, over 72 bytes.
	_, err = svc.SignUp(ctx, "bob@example.com", strings.Repeat("日", 30))
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, map[string]string{"password": "is too long (maximum is 72 bytes)"}, fe.FieldErrors())

	_, err = svc.SignUp(ctx, "carol@example.com", strings.Repeat("日", 24))
	assert.NoError(t, err, "72 bytes is accepted")

	_, err = svc.SignUp(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "ADA@example.com", "another one")
	assert.ErrorIs(t, err, userdomain.ErrEmailTaken)
}

func TestUserService_SignUpSurvivesMailFailure(t *testing.T) {
	svc := newTestService(failingMailer{})

	_, err := svc.SignUp(context.Background(), "ada@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), "ada@example.com", "correct horse")
	assert.NoError(t, err)
}

func TestUserService_SignIn(t *testing.T) {
	svc := newTestService(mail.NewOutbox("", 0))
	ctx := context.Background()
	registered, err := svc.SignUp(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"matching credentials", "ada@example.com", "correct horse", nil},
		{"email is case-insensitive", "ADA@EXAMPLE.COM", "correct horse", nil},
		{"wrong password", "ada@example.com", "wrong horse", userdomain.ErrInvalidCredentials},
		{"unknown email", "bob@example.com", "correct horse", userdomain.ErrInvalidCredentials},
		{"malformed email", "ada", "correct horse", userdomain.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.SignIn(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
		})
	}
}
