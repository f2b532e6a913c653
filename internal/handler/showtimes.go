package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/repository"
)

// ShowtimeHandler exposes showtimes and the derived seat map.  Listing
// and the seat map are public; creation is restricted to admins by the
// route middleware.
type ShowtimeHandler struct {
	Showtimes *repository.ShowtimeRepo
	Movies    *repository.MovieRepo
	Theatres  *repository.TheatreRepo
	Bookings  *repository.BookingRepo
}

func NewShowtimeHandler(s *repository.ShowtimeRepo, m *repository.MovieRepo, t *repository.TheatreRepo, b *repository.BookingRepo) *ShowtimeHandler {
	if s == nil || m == nil || t == nil || b == nil {
		panic("nil repository passed to NewShowtimeHandler")
	}
	return &ShowtimeHandler{Showtimes: s, Movies: m, Theatres: t, Bookings: b}
}

type showtimeCreateReq struct {
	MovieID   string    `json:"movieId"`
	TheatreID string    `json:"theatreId"`
	ShowDate  time.Time `json:"showDate"`
	Price     float64   `json:"price"`
}

// List handles GET /api/showtimes with optional movieId/theatreId query
// filters.  Both filters may be combined; neither is required.
func (h *ShowtimeHandler) List(c echo.Context) error {
	showtimes, err := h.Showtimes.List(c.Request().Context(),
		c.QueryParam("movieId"), c.QueryParam("theatreId"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load showtimes")
	}
	return c.JSON(http.StatusOK, showtimes)
}

// Create handles POST /api/showtimes (admin only).  The new showtime
// inherits the theatre's total seat count as its available-seat counter.
// Nothing prevents overlapping showtimes for the same theatre and slot.
func (h *ShowtimeHandler) Create(c echo.Context) error {
	var req showtimeCreateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.MovieID == "" || req.TheatreID == "" {
		return fail(c, http.StatusBadRequest, "movieId and theatreId are required")
	}
	if req.Price <= 0 {
		return fail(c, http.StatusBadRequest, "price must be positive")
	}
	ctx := c.Request().Context()
	if _, err := h.Movies.GetByID(ctx, req.MovieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return fail(c, http.StatusNotFound, "Movie not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to load movie")
	}
	theatre, err := h.Theatres.GetByID(ctx, req.TheatreID)
	if err != nil {
		if errors.Is(err, repository.ErrTheatreNotFound) {
			return fail(c, http.StatusNotFound, "Theatre not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to load theatre")
	}

	s, err := h.Showtimes.Create(ctx, model.Showtime{
		MovieID:        req.MovieID,
		TheatreID:      req.TheatreID,
		ShowDate:       req.ShowDate,
		Price:          req.Price,
		AvailableSeats: theatre.TotalSeats,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to create showtime")
	}
	return c.JSON(http.StatusCreated, s)
}

// Seats handles GET /api/showtimes/:id/seats.  The seat map is derived
// on demand from the theatre geometry with seats claimed by confirmed
// bookings marked booked; no per-seat rows are stored.
func (h *ShowtimeHandler) Seats(c echo.Context) error {
	ctx := c.Request().Context()
	showtime, err := h.Showtimes.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			return fail(c, http.StatusNotFound, "Showtime not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to load showtime")
	}
	theatre, err := h.Theatres.GetByID(ctx, showtime.TheatreID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load theatre")
	}
	booked, err := h.Bookings.BookedSeatsByShowtime(ctx, showtime.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load booked seats")
	}
	return c.JSON(http.StatusOK, model.SeatMap{
		ShowtimeID: showtime.ID,
		Theatre:    theatre,
		Seats:      model.GenerateSeatMap(theatre, booked),
	})
}
