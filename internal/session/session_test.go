package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/iliyamo/movie-booking/internal/api"
	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/store"
)

func newSessionWith(t *testing.T, handler http.Handler, storedFile string) (*Session, *store.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "credentials.json")
	if storedFile != "" {
		if err := os.WriteFile(path, []byte(storedFile), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	st := store.New(path)
	return New(api.NewClient(srv.URL, srv.Client()), st), st
}

func TestMalformedStoredSessionStartsUnauthenticated(t *testing.T) {
	s, _ := newSessionWith(t, http.NotFoundHandler(), `{"token": 12, "user": "nope"`)
	if s.IsAuthenticated() {
		t.Fatal("expected unauthenticated session")
	}
	if s.Err != nil {
		t.Fatalf("expected no startup error, got %v", s.Err)
	}
}

func TestStoredSessionRestores(t *testing.T) {
	stored := `{"token":"tok","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"USER"}}`
	s, _ := newSessionWith(t, http.NotFoundHandler(), stored)
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if s.Token() != "tok" || s.User().Name != "Ada" {
		t.Fatalf("restored session: token=%q user=%+v", s.Token(), s.User())
	}
}

func TestLoginPersistsCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"tok","tokenType":"bearer","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"USER"}}`))
	})
	s, st := newSessionWith(t, handler, "")

	if err := s.Login(context.Background(), "ada@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated session after login")
	}
	creds, ok := st.Load()
	if !ok || creds.Token != "tok" || creds.User.ID != "u1" {
		t.Fatalf("persisted credentials: ok=%v creds=%+v", ok, creds)
	}
}

func TestLoginFailureKeepsExistingSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password","success":false}`))
	})
	stored := `{"token":"old","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"USER"}}`
	s, _ := newSessionWith(t, handler, stored)

	err := s.Login(context.Background(), "ada@example.com", "wrong")
	if err == nil {
		t.Fatal("expected login failure")
	}
	if s.Err == nil {
		t.Fatal("expected recorded error")
	}
	// A rejected login must not purge the session that was already
	// established; only expired-token 401s on authenticated calls do.
	if !s.IsAuthenticated() || s.Token() != "old" {
		t.Fatalf("existing session disturbed: auth=%v token=%q", s.IsAuthenticated(), s.Token())
	}
	if s.Expired {
		t.Fatal("failed login must not mark the session expired")
	}
}

func TestUnauthorizedResponsePurgesSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid or expired token","success":false}`))
	})
	stored := `{"token":"expired","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"USER"}}`
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(stored), 0o600); err != nil {
		t.Fatal(err)
	}
	st := store.New(path)
	client := api.NewClient(srv.URL, srv.Client())
	s := New(client, st)

	if _, err := client.Bookings(context.Background()); !api.IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatal("expected session to be purged after 401")
	}
	if !s.Expired {
		t.Fatal("expected Expired flag to be set")
	}
	if _, ok := st.Load(); ok {
		t.Fatal("expected persisted credentials to be purged")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	stored := `{"token":"tok","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"USER"}}`
	s, st := newSessionWith(t, http.NotFoundHandler(), stored)

	if err := s.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s.IsAuthenticated() || s.Token() != "" {
		t.Fatal("expected logged-out session")
	}
	if s.User() != (model.User{}) {
		t.Fatal("expected zero user after logout")
	}
	if _, ok := st.Load(); ok {
		t.Fatal("expected credentials file to be removed")
	}
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newSessionWith(t, http.NotFoundHandler(), "")
	if err := s.Register(context.Background(), "", "a@b.c", "pw"); err == nil {
		t.Fatal("expected validation error")
	}
	s.ClearError()
	if s.Err != nil {
		t.Fatal("expected error to be cleared")
	}
}
