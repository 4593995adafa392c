package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/blogs/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

func newTestGate(store sessions.Store, enabled bool) *SessionGate {
	return NewSessionGate(store, Policy{Public: []string{"index", "show"}}, enabled, logger.Discard())
}

// signedInRequest builds a request carrying a session cookie for id.
func signedInRequest(t *testing.T, store sessions.Store, method string, id Identity) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	if err := SignIn(w, httptest.NewRequest(http.MethodPost, "/users/sign_in", nil), store, id); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	req := httptest.NewRequest(method, "/blogs", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestGuard_AllowsSignedInIdentity(t *testing.T) {
	store := newTestStore()
	want := Identity{UserID: uuid.New(), Email: "ada@example.com"}

	var captured Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = IdentityFromCtx(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	Guard(newTestGate(store, true), "create", logger.Discard())(next).
		ServeHTTP(w, signedInRequest(t, store, http.MethodPost, want))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if captured != want {
		t.Fatalf("expected identity %+v in context, got %+v", want, captured)
	}
}

func TestGuard_DeniesAnonymousBeforeHandler(t *testing.T) {
	store := newTestStore()

	for _, action := range []string{"new", "create", "edit", "update", "destroy"} {
		t.Run(action, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler should not be called")
			})

			w := httptest.NewRecorder()
			Guard(newTestGate(store, true), action, logger.Discard())(next).
				ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/blogs", nil))

			if w.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", w.Code)
			}
		})
	}
}

func TestGuard_PublicActionsAllowAnonymous(t *testing.T) {
	store := newTestStore()

	for _, action := range []string{"index", "show"} {
		t.Run(action, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			w := httptest.NewRecorder()
			Guard(newTestGate(store, true), action, logger.Discard())(next).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs", nil))

			if !called {
				t.Fatalf("expected handler to run, got status %d", w.Code)
			}
		})
	}
}

func TestGuard_DisabledGateAllowsEverything(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := httptest.NewRecorder()
	Guard(newTestGate(newTestStore(), false), "destroy", logger.Discard())(next).
		ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/blogs/1", nil))

	if !called {
		t.Fatalf("expected handler to run with auth disabled, got status %d", w.Code)
	}
}
