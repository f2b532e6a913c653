package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iliyamo/movie-booking/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	creds := Credentials{
		Token: "tok",
		User:  model.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: "USER"},
	}
	if err := s.Save(creds); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := s.Load()
	if !ok {
		t.Fatal("expected credentials to load")
	}
	if got.Token != "tok" || got.User.ID != "u1" || got.User.Email != "ada@example.com" {
		t.Fatalf("loaded %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)
	if _, ok := s.Load(); ok {
		t.Fatal("expected no credentials from missing file")
	}
}

func TestLoadMalformedFileDiscards(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := New(path)

	if _, ok := s.Load(); ok {
		t.Fatal("expected malformed credentials to be rejected")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected malformed file to be removed")
	}
}

func TestLoadIncompleteCredentialsRejected(t *testing.T) {
	s := testStore(t)
	// Token without a user is not a usable session.
	if err := s.Save(Credentials{Token: "tok"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Load(); ok {
		t.Fatal("expected incomplete credentials to be rejected")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := testStore(t)
	if err := s.Save(Credentials{Token: "tok", User: model.User{ID: "u1"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, ok := s.Load(); ok {
		t.Fatal("expected no credentials after clear")
	}
}
