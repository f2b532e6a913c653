// Package store persists the session credentials (access token plus the
// logged-in user) as a JSON file in the user's config directory.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/iliyamo/movie-booking/internal/model"
)

const appDir = "movie-booking"

// Credentials is the persisted token/user pair.
type Credentials struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (c Credentials) valid() bool {
	return c.Token != "" && c.User.ID != ""
}

// Store reads and writes credentials at a fixed path.
type Store struct {
	path string
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Default places the credentials file under the user's config directory.
func Default() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return New(filepath.Join(dir, appDir, "credentials.json")), nil
}

// Load reads the persisted credentials.  A missing, unreadable or
// malformed file yields ok=false with no error: the session simply
// starts unauthenticated.
func (s *Store) Load() (Credentials, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}, false
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil || !creds.valid() {
		// Discard whatever is there so the next load is clean.
		_ = os.Remove(s.path)
		return Credentials{}, false
	}
	return creds, true
}

// Save writes the credentials, creating the parent directory if needed.
func (s *Store) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o600)
}

// Clear removes the credentials file.  Removing a file that does not
// exist is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
