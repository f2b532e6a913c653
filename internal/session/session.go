// Package session tracks the authenticated user for the client side of
// the application.  Credentials are read from the store at startup and
// written back by login and register; a 401 from the API purges them
// and resets the session through the client's unauthorized hook.
package session

import (
	"context"
	"errors"

	"github.com/iliyamo/movie-booking/internal/api"
	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/store"
)

// Session holds the current authentication state.  It is meant to be
// driven from a single goroutine (the UI loop) and is not safe for
// concurrent use.
type Session struct {
	client *api.Client
	store  *store.Store

	user  *model.User
	token string

	// Expired is flipped by the unauthorized hook so the UI can tell
	// the user why they were logged out.
	Expired bool
	Err     error
}

// New initializes the session from the persisted credentials.  A
// malformed or missing credential file starts the session
// unauthenticated without error.  The session installs itself as the
// client's token source and wires the 401 purge.
func New(client *api.Client, st *store.Store) *Session {
	s := &Session{client: client, store: st}
	if creds, ok := st.Load(); ok {
		s.token = creds.Token
		u := creds.User
		s.user = &u
	}
	client.SetTokenSource(s)
	client.SetUnauthorizedHook(func() {
		_ = st.Clear()
		s.user = nil
		s.token = ""
		s.Expired = true
	})
	return s
}

// Token implements api.TokenSource.
func (s *Session) Token() string { return s.token }

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool { return s.user != nil }

// User returns the logged-in user, or the zero value when logged out.
func (s *Session) User() model.User {
	if s.user == nil {
		return model.User{}
	}
	return *s.user
}

// Login authenticates and persists the credentials.  On failure the
// error is recorded and any existing session is left untouched.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.Err = nil
	if email == "" || password == "" {
		s.Err = errors.New("email and password are required")
		return s.Err
	}
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.Err = err
		return err
	}
	s.adopt(resp)
	return nil
}

// Register creates an account and logs the new user in.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	s.Err = nil
	if name == "" || email == "" || password == "" {
		s.Err = errors.New("name, email and password are required")
		return s.Err
	}
	resp, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		s.Err = err
		return err
	}
	s.adopt(resp)
	return nil
}

// Logout clears the persisted credentials and the in-memory user.
func (s *Session) Logout() error {
	s.user = nil
	s.token = ""
	s.Err = nil
	s.Expired = false
	return s.store.Clear()
}

// ClearError resets the last recorded error.
func (s *Session) ClearError() { s.Err = nil }

func (s *Session) adopt(resp api.AuthResponse) {
	u := resp.User
	s.user = &u
	s.token = resp.AccessToken
	s.Expired = false
	// Persisting is best effort: a read-only config dir still leaves a
	// working in-memory session.
	_ = s.store.Save(store.Credentials{Token: resp.AccessToken, User: resp.User})
}
