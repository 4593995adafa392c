package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/blogs/pkg/logger"
)

var (
	testAuthKey = []byte("0123456789abcdef0123456789abcdef")
	testEncKey  = []byte("0123456789abcdef")
)

// offlineStore points at a Redis that is never dialled; only paths that do
// not reach Redis may be exercised with it.
func offlineStore(t *testing.T) *RedisStore {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, testAuthKey, testEncKey, false)
}

func TestRedisStore_NewWithoutCookie(t *testing.T) {
	store := offlineStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	session, err := store.New(r, sessionName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.IsNew || session.ID != "" {
		t.Fatalf("expected a fresh session, got IsNew=%v ID=%q", session.IsNew, session.ID)
	}
}

func TestRedisStore_NewWithTamperedCookie(t *testing.T) {
	store := offlineStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: "tampered"})

	session, err := store.New(r, sessionName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.IsNew {
		t.Fatal("expected a fresh session for an undecodable cookie")
	}
}

func TestRedisStore_ExpireWithoutID(t *testing.T) {
	store := offlineStore(t)
	r := httptest.NewRequest(http.MethodDelete, "/users/sign_out", nil)
	w := httptest.NewRecorder()

	if err := SignOut(w, r, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected one expired cookie, got %+v", cookies)
	}
}

func TestRedisStore_RegenerateWithoutID(t *testing.T) {
	store := offlineStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	session, _ := store.New(r, sessionName)

	if err := store.Regenerate(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisStore_Integration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close() //nolint:errcheck
	store := NewSessionStore(client, testAuthKey, testEncKey, false)

	id := Identity{UserID: uuid.New(), Email: "ada@example.com"}
	w := httptest.NewRecorder()
	if err := SignIn(w, httptest.NewRequest(http.MethodPost, "/users/sign_in", nil), store, id); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	first := w.Result().Cookies()[0]

	t.Run("cookie restores identity", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		r.AddCookie(first)
		gate := NewSessionGate(store, Policy{}, true, logger.Discard())
		if got := gate.Authenticate(r); got != id {
			t.Fatalf("expected %+v, got %+v", id, got)
		}
	})

	t.Run("signing in again rotates the session id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/users/sign_in", nil)
		r.AddCookie(first)
		w := httptest.NewRecorder()
		if err := SignIn(w, r, store, id); err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		second := w.Result().Cookies()[0]
		if second.Value == first.Value {
			t.Fatal("expected a new session cookie")
		}

		stale := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		stale.AddCookie(first)
		session, err := store.New(stale, sessionName)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !session.IsNew {
			t.Fatal("expected the previous session to be gone")
		}
	})

}
