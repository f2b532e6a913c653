package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/queue"
	"github.com/iliyamo/movie-booking/internal/repository"
	queue_publisher "github.com/iliyamo/movie-booking/internal/service"
)

// BookingHandler implements the booking endpoints.  All routes require an
// authenticated user; the JWT middleware has placed the user id in the
// context before any of these run.  Seat-claiming operations execute in a
// transaction so the booking, its seats and the showtime counter commit
// together.
type BookingHandler struct {
	Bookings  *repository.BookingRepo
	Showtimes *repository.ShowtimeRepo
	Movies    *repository.MovieRepo
	Theatres  *repository.TheatreRepo

	// PublishEvents disables the RabbitMQ publish in tests.
	PublishEvents bool
}

func NewBookingHandler(b *repository.BookingRepo, s *repository.ShowtimeRepo, m *repository.MovieRepo, t *repository.TheatreRepo) *BookingHandler {
	if b == nil || s == nil || m == nil || t == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Showtimes: s, Movies: m, Theatres: t, PublishEvents: true}
}

type bookingCreateReq struct {
	ShowtimeID  string       `json:"showtimeId"`
	Seats       []model.Seat `json:"seats"`
	TotalAmount float64      `json:"totalAmount"`
}

// Create handles POST /api/bookings.  It validates the showtime, rejects
// seats that a confirmed booking already claims, decrements the showtime's
// available-seat counter and inserts the booking, all in one transaction.
// On success a booking.confirmed event is published best-effort.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req bookingCreateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.ShowtimeID == "" {
		return fail(c, http.StatusBadRequest, "showtimeId is required")
	}
	if len(req.Seats) == 0 {
		return fail(c, http.StatusBadRequest, "at least one seat is required")
	}
	// Reject duplicate seats within the request itself.
	seen := make(map[string]bool, len(req.Seats))
	for _, s := range req.Seats {
		k := s.Label()
		if seen[k] {
			return fail(c, http.StatusBadRequest, "duplicate seat "+k+" in request")
		}
		seen[k] = true
	}

	ctx := c.Request().Context()
	showtime, err := h.Showtimes.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			return fail(c, http.StatusNotFound, "Showtime not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to load showtime")
	}
	if showtime.AvailableSeats < len(req.Seats) {
		return fail(c, http.StatusBadRequest, "Not enough available seats for this showtime")
	}

	tx, err := h.Bookings.DB.BeginTx(ctx, nil)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to start transaction")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booked, err := h.Bookings.BookedSeatsByShowtimeTx(ctx, tx, showtime.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to check seat availability")
	}
	for _, want := range req.Seats {
		for _, taken := range booked {
			if want.SameSeat(taken) {
				return fail(c, http.StatusBadRequest, "Seat "+want.Label()+" is already booked")
			}
		}
	}

	if err := h.Showtimes.AdjustAvailableSeatsTx(ctx, tx, showtime.ID, -len(req.Seats)); err != nil {
		if errors.Is(err, repository.ErrNotEnoughSeats) {
			return fail(c, http.StatusBadRequest, "Not enough available seats for this showtime")
		}
		return fail(c, http.StatusInternalServerError, "failed to update seat availability")
	}

	seats := make([]model.Seat, len(req.Seats))
	for i, s := range req.Seats {
		seats[i] = model.Seat{Row: strings.ToUpper(strings.TrimSpace(s.Row)), Number: s.Number, Status: model.SeatBooked}
	}
	booking, err := h.Bookings.CreateTx(ctx, tx, model.Booking{
		UserID:      userID,
		ShowtimeID:  showtime.ID,
		Seats:       seats,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to create booking")
	}
	if err := tx.Commit(); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to commit transaction")
	}
	committed = true

	if h.PublishEvents {
		go h.publishConfirmed(booking, showtime)
	}
	return c.JSON(http.StatusCreated, booking)
}

// publishConfirmed assembles and publishes the booking.confirmed event.
// Failures are logged inside the publisher and never affect the booking.
func (h *BookingHandler) publishConfirmed(b model.Booking, s model.Showtime) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		ShowtimeID:  s.ID,
		ShowDate:    s.ShowDate.Format(time.RFC3339),
		TotalAmount: b.TotalAmount,
		ConfirmedAt: b.BookingDate.Format(time.RFC3339),
	}
	for _, seat := range b.Seats {
		ev.SeatLabels = append(ev.SeatLabels, seat.Label())
	}
	if m, err := h.Movies.GetByID(ctx, s.MovieID); err == nil {
		ev.MovieTitle = m.Title
	}
	if t, err := h.Theatres.GetByID(ctx, s.TheatreID); err == nil {
		ev.TheatreName = t.Name
	}
	if err := queue_publisher.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("booking %s: event publish failed: %v", b.ID, err)
	}
}

// List handles GET /api/bookings and returns the current user's bookings.
func (h *BookingHandler) List(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	bookings, err := h.Bookings.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load bookings")
	}
	return c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id.  Bookings are private: requesting
// another user's booking yields 403.
func (h *BookingHandler) Get(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return fail(c, http.StatusNotFound, "Booking not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to load booking")
	}
	if b.UserID != userID {
		return fail(c, http.StatusForbidden, "You can only view your own bookings")
	}
	return c.JSON(http.StatusOK, b)
}

// Cancel handles DELETE /api/bookings/:id.  The booking row is kept with
// status cancelled and its seats are released back to the showtime; the
// updated booking is returned so clients can reconcile their local state.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx := c.Request().Context()
	tx, err := h.Bookings.DB.BeginTx(ctx, nil)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to start transaction")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	b, err := h.Bookings.CancelTx(ctx, tx, c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return fail(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, repository.ErrForbidden):
			return fail(c, http.StatusBadRequest, "You can only cancel your own bookings")
		case errors.Is(err, repository.ErrAlreadyCancelled):
			return fail(c, http.StatusBadRequest, "Booking is already cancelled")
		}
		return fail(c, http.StatusInternalServerError, "failed to cancel booking")
	}
	if err := h.Showtimes.AdjustAvailableSeatsTx(ctx, tx, b.ShowtimeID, len(b.Seats)); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to release seats")
	}
	if err := tx.Commit(); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to commit transaction")
	}
	committed = true
	return c.JSON(http.StatusOK, b)
}
