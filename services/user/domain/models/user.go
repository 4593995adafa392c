package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Email is a normalized (trimmed, lower-cased) email address. Comparison is
// therefore case-insensitive.
type Email string

const maxEmailLength = 255

// NewEmail normalizes s and checks it is a bare address.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > maxEmailLength {
		return "", fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", fmt.Errorf("email %q is not a valid address", s)
	}
	return Email(s), nil
}

// String returns the underlying string value.
func (e Email) String() string {
	return string(e)
}

// User is an account that can sign in to manage blogs.
type User struct {
	ID           uuid.UUID
	Email        Email
	PasswordHash []byte
	CreatedAt    time.Time
}

// NewUser constructs a User with a generated ID.
func NewUser(email Email, passwordHash []byte, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
}
