package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const identityKey contextKey = "identity"

// ErrUnauthenticated is returned when no signed-in identity exists in the
// request context.
var ErrUnauthenticated = errors.New("authentication required")

// Identity is the caller as established by the Gate. The zero value is the
// anonymous identity.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Anonymous is the identity of a caller without a valid session.
var Anonymous = Identity{}

// IsAuthenticated reports whether the identity belongs to a signed-in user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != uuid.Nil
}

// IdentityFromCtx extracts the signed-in identity from the request context.
// Returns Anonymous and ErrUnauthenticated for anonymous requests.
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || !id.IsAuthenticated() {
		return Anonymous, ErrUnauthenticated
	}
	return id, nil
}

// WithIdentity returns a new context with the given identity attached.
// Used by Guard after authenticating the request.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
