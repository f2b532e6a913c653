package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/repository"
)

// MovieHandler exposes the movie catalog.  Listing is public; creation
// is restricted to admins by the route middleware.
type MovieHandler struct {
	Movies *repository.MovieRepo
}

func NewMovieHandler(m *repository.MovieRepo) *MovieHandler {
	if m == nil {
		panic("nil repository passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: m}
}

type movieCreateReq struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Rating      float64   `json:"rating"`
	Duration    int       `json:"duration"`
	Language    string    `json:"language"`
	PosterURL   string    `json:"posterUrl"`
	ReleaseDate time.Time `json:"releaseDate"`
}

// List handles GET /api/movies and returns the full catalog as a bare
// JSON array.
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.Movies.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load movies")
	}
	return c.JSON(http.StatusOK, movies)
}

// Get handles GET /api/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	m, err := h.Movies.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return fail(c, http.StatusNotFound, "Movie not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to load movie")
	}
	return c.JSON(http.StatusOK, m)
}

// Create handles POST /api/movies (admin only).
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieCreateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Genre == "" || req.Language == "" {
		return fail(c, http.StatusBadRequest, "title, genre and language are required")
	}
	if req.Rating < 0 || req.Rating > 10 {
		return fail(c, http.StatusBadRequest, "rating must be between 0 and 10")
	}
	if req.Duration <= 0 {
		return fail(c, http.StatusBadRequest, "duration must be positive")
	}

	m, err := h.Movies.Create(c.Request().Context(), model.Movie{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Rating:      req.Rating,
		Duration:    req.Duration,
		Language:    req.Language,
		PosterURL:   req.PosterURL,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to create movie")
	}
	return c.JSON(http.StatusCreated, m)
}
