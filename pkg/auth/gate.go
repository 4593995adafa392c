package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/pkg/logger"
)

// ErrForbidden is returned when the Gate denies an action.
var ErrForbidden = errors.New("forbidden")

const (
	sessionName        = "blogs_session"
	sessionUserIDKey   = "user_id"
	sessionUserMailKey = "email"
)

// Gate decides who the caller is and whether they may perform an action.
// Both methods must be safe for concurrent use.
type Gate interface {
	Authenticate(r *http.Request) Identity
	Authorize(id Identity, action string) bool
}

// Policy lists the actions anonymous callers may perform. Every other action
// requires an authenticated identity.
type Policy struct {
	Public []string
}

// SessionGate authenticates callers from a gorilla session cookie.
type SessionGate struct {
	store   sessions.Store
	public  map[string]struct{}
	enabled bool
	log     logger.Logger
}

// NewSessionGate returns a SessionGate reading identities from store.
// When enabled is false every action is authorized.
func NewSessionGate(store sessions.Store, policy Policy, enabled bool, log logger.Logger) *SessionGate {
	public := make(map[string]struct{}, len(policy.Public))
	for _, a := range policy.Public {
		public[a] = struct{}{}
	}
	return &SessionGate{store: store, public: public, enabled: enabled, log: log}
}

// Authenticate returns the identity stored in the session, or Anonymous when
// the cookie is missing, tampered or incomplete.
func (g *SessionGate) Authenticate(r *http.Request) Identity {
	session, err := g.store.Get(r, sessionName)
	if err != nil {
		g.log.WarnContext(r.Context(), "invalid session cookie", "error", err)
		return Anonymous
	}

	userIDStr, ok := session.Values[sessionUserIDKey].(string)
	if !ok || userIDStr == "" {
		return Anonymous
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		g.log.WarnContext(r.Context(), "invalid user_id in session", "user_id", userIDStr, "error", err)
		return Anonymous
	}

	email, _ := session.Values[sessionUserMailKey].(string)
	return Identity{UserID: userID, Email: email}
}

// Authorize reports whether id may perform action.
func (g *SessionGate) Authorize(id Identity, action string) bool {
	if !g.enabled {
		return true
	}
	if _, ok := g.public[action]; ok {
		return true
	}
	return id.IsAuthenticated()
}

// regenerator is implemented by stores that keep server-side session IDs.
type regenerator interface {
	Regenerate(ctx context.Context, session *sessions.Session) error
}

// SignIn starts a session for id on the response.
func SignIn(w http.ResponseWriter, r *http.Request, store sessions.Store, id Identity) error {
	// A stale or undecodable cookie still yields a fresh session to write into.
	session, err := store.Get(r, sessionName)
	if session == nil {
		return err
	}
	if rg, ok := store.(regenerator); ok {
		if err := rg.Regenerate(r.Context(), session); err != nil {
			return err
		}
	}
	session.Values[sessionUserIDKey] = id.UserID.String()
	session.Values[sessionUserMailKey] = id.Email
	return session.Save(r, w)
}

// SignOut destroys the caller's session and expires the cookie.
func SignOut(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if session == nil {
		return err
	}
	session.Values = map[any]any{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
