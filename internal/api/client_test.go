package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iliyamo/movie-booking/internal/model"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	c.SetTokenSource(staticToken("abc123"))

	if _, err := c.Movies(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	c.SetTokenSource(staticToken(""))

	if _, err := c.Movies(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestDoPrefersServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Seat A1 is already booked","success":false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.CreateBooking(context.Background(), BookingRequest{ShowtimeID: "st-1"})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Seat A1 is already booked" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestDoFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Movies(context.Background())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message == "" {
		t.Fatal("expected non-empty fallback message")
	}
}

func TestUnauthorizedHookFiresOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid or expired token","success":false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	fired := 0
	c.SetUnauthorizedHook(func() { fired++ })

	_, err := c.Bookings(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if fired != 1 {
		t.Fatalf("hook fired %d times, want 1", fired)
	}
}

func TestUnauthorizedHookNotFiredOnOtherErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Movie not found","success":false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	fired := 0
	c.SetUnauthorizedHook(func() { fired++ })

	_, err := c.Movie(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if fired != 0 {
		t.Fatalf("hook fired on non-401: %d", fired)
	}
}

func TestShowtimesFilterQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	if _, err := c.Showtimes(context.Background(), "mv-1", ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotQuery != "movieId=mv-1" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestLoginDecodesAuthResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"tok","tokenType":"bearer","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"USER"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	resp, err := c.Login(context.Background(), "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.AccessToken != "tok" || resp.User != (model.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: "USER"}) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
