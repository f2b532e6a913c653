// Package api is the HTTP client for the booking service.  It attaches
// the session's bearer token to every request and funnels non-2xx
// responses into APIError so callers can show the server's message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iliyamo/movie-booking/internal/model"
)

const defaultTimeout = 10 * time.Second

// TokenSource supplies the current access token.  An empty string means
// the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the booking REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource

	// onUnauthorized runs once per 401 response, before the error is
	// returned to the caller.  The session layer uses it to purge
	// stored credentials.
	onUnauthorized func()
}

// APIError is returned when the API responds with a non-2xx status.
// Message carries the server-supplied error message when the body had
// one, otherwise a generic description.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "api error"
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the error represents a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// NewClient creates a client for the API at baseURL.  If httpClient is
// nil a default client with a fixed timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// SetTokenSource installs the token provider for authenticated requests.
func (c *Client) SetTokenSource(ts TokenSource) { c.tokens = ts }

// SetUnauthorizedHook installs the callback invoked on every 401.
func (c *Client) SetUnauthorizedHook(fn func()) { c.onUnauthorized = fn }

// ----- auth -----

// AuthResponse is the payload returned by login and register.
type AuthResponse struct {
	AccessToken string     `json:"accessToken"`
	TokenType   string     `json:"tokenType"`
	User        model.User `json:"user"`
}

// Login exchanges credentials for a token.  The request is sent without
// a bearer token and a 401 here does not trigger the unauthorized hook:
// failing to log in must not purge an existing session.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	err := c.doUnauthenticated(ctx, http.MethodPost, "/api/auth/login", body, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"name": name, "email": email, "password": password}
	err := c.doUnauthenticated(ctx, http.MethodPost, "/api/auth/register", body, &out)
	return out, err
}

// ----- catalog -----

func (c *Client) Movies(ctx context.Context) ([]model.Movie, error) {
	var out []model.Movie
	err := c.do(ctx, http.MethodGet, "/api/movies", nil, &out)
	return out, err
}

func (c *Client) Movie(ctx context.Context, id string) (model.Movie, error) {
	var out model.Movie
	if id == "" {
		return out, errors.New("movie id is required")
	}
	err := c.do(ctx, http.MethodGet, "/api/movies/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateMovie(ctx context.Context, m model.Movie) (model.Movie, error) {
	var out model.Movie
	err := c.do(ctx, http.MethodPost, "/api/movies", m, &out)
	return out, err
}

func (c *Client) Theatres(ctx context.Context) ([]model.Theatre, error) {
	var out []model.Theatre
	err := c.do(ctx, http.MethodGet, "/api/theatres", nil, &out)
	return out, err
}

func (c *Client) CreateTheatre(ctx context.Context, t model.Theatre) (model.Theatre, error) {
	var out model.Theatre
	err := c.do(ctx, http.MethodPost, "/api/theatres", t, &out)
	return out, err
}

// Showtimes lists showtimes, optionally filtered by movie and/or theatre.
func (c *Client) Showtimes(ctx context.Context, movieID, theatreID string) ([]model.Showtime, error) {
	q := url.Values{}
	if movieID != "" {
		q.Set("movieId", movieID)
	}
	if theatreID != "" {
		q.Set("theatreId", theatreID)
	}
	endpoint := "/api/showtimes"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	var out []model.Showtime
	err := c.do(ctx, http.MethodGet, endpoint, nil, &out)
	return out, err
}

func (c *Client) CreateShowtime(ctx context.Context, s model.Showtime) (model.Showtime, error) {
	var out model.Showtime
	err := c.do(ctx, http.MethodPost, "/api/showtimes", s, &out)
	return out, err
}

// SeatMap fetches the seat layout for a showtime, each seat marked
// available or booked.
func (c *Client) SeatMap(ctx context.Context, showtimeID string) (model.SeatMap, error) {
	var out model.SeatMap
	if showtimeID == "" {
		return out, errors.New("showtime id is required")
	}
	err := c.do(ctx, http.MethodGet, "/api/showtimes/"+url.PathEscape(showtimeID)+"/seats", nil, &out)
	return out, err
}

// ----- bookings -----

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	ShowtimeID  string       `json:"showtimeId"`
	Seats       []model.Seat `json:"seats"`
	TotalAmount float64      `json:"totalAmount"`
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (model.Booking, error) {
	var out model.Booking
	err := c.do(ctx, http.MethodPost, "/api/bookings", req, &out)
	return out, err
}

func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &out)
	return out, err
}

func (c *Client) Booking(ctx context.Context, id string) (model.Booking, error) {
	var out model.Booking
	if id == "" {
		return out, errors.New("booking id is required")
	}
	err := c.do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil, &out)
	return out, err
}

// CancelBooking cancels a booking and returns its final state.
func (c *Client) CancelBooking(ctx context.Context, id string) (model.Booking, error) {
	var out model.Booking
	if id == "" {
		return out, errors.New("booking id is required")
	}
	err := c.do(ctx, http.MethodDelete, "/api/bookings/"+url.PathEscape(id), nil, &out)
	return out, err
}

// ----- transport -----

// errorBody is the shape of the API's error responses.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, endpoint string, in, out any) error {
	return c.roundTrip(ctx, method, endpoint, in, out, true)
}

func (c *Client) doUnauthenticated(ctx context.Context, method, endpoint string, in, out any) error {
	return c.roundTrip(ctx, method, endpoint, in, out, false)
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, in, out any, withAuth bool) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: res.StatusCode, Message: res.Status}
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		var eb errorBody
		if json.Unmarshal(snippet, &eb) == nil && eb.Message != "" {
			apiErr.Message = eb.Message
		}
		if withAuth && res.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}
