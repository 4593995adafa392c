package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/blogs/pkg/logger"
	"github.com/ghuser/blogs/pkg/mail"
	userdomain "github.com/ghuser/blogs/services/user/domain"
	"github.com/ghuser/blogs/services/user/domain/models"
	"github.com/ghuser/blogs/services/user/domain/repositories"
)

const welcomeTemplate = "# Welcome to Blogs\n\n" +
	"Hi %s,\n\n" +
	"Your account is ready. Sign in to start writing:\n\n" +
	"```sh\n" +
	"curl -c cookies.txt -X POST http://localhost:8080/users/sign_in \\\n" +
	"  -H 'Content-Type: application/json' \\\n" +
	"  -d '{\"email\":\"%s\",\"password\":\"...\"}'\n" +
	"```\n"

// maxPasswordBytes is the most input bcrypt hashes; longer passwords are
// rejected by GenerateFromPassword.
const maxPasswordBytes = 72

// UserService registers users and checks their credentials.
type UserService struct {
	repo   repositories.UserRepository
	mailer mail.Mailer
	log    logger.Logger
	cost   int
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUserService returns a UserService hashing passwords with bcrypt.DefaultCost.
func NewUserService(repo repositories.UserRepository, mailer mail.Mailer, log logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		mailer: mailer,
		log:    log,
		cost:   bcrypt.DefaultCost,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// SignUp registers a user and sends the welcome mail. A failed mail delivery
// is logged and does not undo the registration.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	addr, err := models.NewEmail(email)
	if err != nil {
		return nil, &userdomain.FieldError{Field: "email", Message: "is invalid"}
	}
	if len(password) > maxPasswordBytes {
		return nil, &userdomain.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("is too long (maximum is %d bytes)", maxPasswordBytes),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", userdomain.ErrInvalidUser, err)
	}

	user := models.NewUser(addr, hash, s.now())
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	s.log.InfoContext(ctx, "user signed up", "user_id", user.ID)

	if err := s.mailer.Deliver(ctx, mail.Message{
		To:       user.Email.String(),
		Subject:  "Welcome to Blogs",
		Markdown: fmt.Sprintf(welcomeTemplate, user.Email, user.Email),
	}); err != nil {
		s.log.WarnContext(ctx, "welcome mail not delivered", "user_id", user.ID, "error", err)
	}
	return user, nil
}

// SignIn returns the user whose credentials match. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials and take comparable time.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	addr, err := models.NewEmail(email)
	if err != nil {
		return nil, userdomain.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, addr)
	if errors.Is(err, userdomain.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return nil, userdomain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, userdomain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.cost)
	})
	return s.dummyHash
}
