// Package booking implements the client-side booking workflow: pick a
// movie, pick a showtime, toggle seats on the seat map, submit the
// booking, list and cancel existing bookings.  The workflow owns the
// current selection and coordinates the API calls each step needs.
//
// Selections survive dependent-fetch failures: selecting a movie whose
// showtime fetch fails keeps the movie selected with an empty showtime
// list and a recorded error, so the user can retry without starting
// over.  The same applies to a failed booking attempt, which retains
// the chosen seats.
//
// The workflow is driven from a single goroutine and is not safe for
// concurrent use.
package booking

import (
	"context"
	"errors"
	"log"

	"github.com/iliyamo/movie-booking/internal/api"
	"github.com/iliyamo/movie-booking/internal/model"
)

// ErrNoSeatsSelected is returned by BookTickets when the selection is
// empty; no request is sent in that case.
var ErrNoSeatsSelected = errors.New("no seats selected")

// ErrNoShowtimeSelected is returned by BookTickets when no showtime has
// been chosen yet.
var ErrNoShowtimeSelected = errors.New("no showtime selected")

// Workflow is the booking state machine.
type Workflow struct {
	client *api.Client

	Movie     *model.Movie
	Showtime  *model.Showtime
	Showtimes []model.Showtime
	Seats     []model.Seat

	// Selected keeps the chosen seats in the order the user picked
	// them; deselecting a seat preserves the order of the rest.
	Selected []model.Seat

	Bookings []model.Booking

	Loading bool
	Err     error
}

func NewWorkflow(client *api.Client) *Workflow {
	return &Workflow{client: client}
}

// SelectMovie records the movie and fetches its showtimes.  The movie
// selection commits even when the fetch fails; the showtime list is
// emptied and the error recorded so the caller can retry.  Any
// downstream selection (showtime, seats) is reset either way.
func (w *Workflow) SelectMovie(ctx context.Context, m model.Movie) error {
	w.Err = nil
	w.Movie = &m
	w.Showtime = nil
	w.Showtimes = nil
	w.Seats = nil
	w.Selected = nil

	w.Loading = true
	defer func() { w.Loading = false }()

	showtimes, err := w.client.Showtimes(ctx, m.ID, "")
	if err != nil {
		w.Err = err
		return err
	}
	w.Showtimes = showtimes
	return nil
}

// SelectShowtime records the showtime and fetches its seat map.  As
// with SelectMovie the selection commits even when the fetch fails.
func (w *Workflow) SelectShowtime(ctx context.Context, s model.Showtime) error {
	w.Err = nil
	w.Showtime = &s
	w.Seats = nil
	w.Selected = nil

	w.Loading = true
	defer func() { w.Loading = false }()

	sm, err := w.client.SeatMap(ctx, s.ID)
	if err != nil {
		w.Err = err
		return err
	}
	w.Seats = sm.Seats
	return nil
}

// ToggleSeat flips a seat in or out of the selection.  Booked seats are
// ignored.  Seats are identified by (row, number); deselection removes
// the seat while keeping the remaining selection in pick order.
func (w *Workflow) ToggleSeat(seat model.Seat) {
	if seat.Status == model.SeatBooked {
		return
	}
	for i, s := range w.Selected {
		if s.SameSeat(seat) {
			w.Selected = append(w.Selected[:i], w.Selected[i+1:]...)
			return
		}
	}
	w.Selected = append(w.Selected, seat)
}

// IsSelected reports whether the seat is in the current selection.
func (w *Workflow) IsSelected(seat model.Seat) bool {
	for _, s := range w.Selected {
		if s.SameSeat(seat) {
			return true
		}
	}
	return false
}

// Total returns the amount a booking of the current selection would
// cost: seat count times the showtime's ticket price.
func (w *Workflow) Total() float64 {
	if w.Showtime == nil {
		return 0
	}
	return float64(len(w.Selected)) * w.Showtime.Price
}

// BookTickets submits the current selection as a booking and returns
// the total charged.  With no seats selected it fails immediately
// without a request.  On success the seat selection is cleared (movie
// and showtime stay selected) and the booking list is refreshed best
// effort; a refresh failure is logged and swallowed.  On failure the
// selection is retained so the user can retry.
func (w *Workflow) BookTickets(ctx context.Context) (float64, error) {
	w.Err = nil
	if len(w.Selected) == 0 {
		w.Err = ErrNoSeatsSelected
		return 0, w.Err
	}
	if w.Showtime == nil {
		w.Err = ErrNoShowtimeSelected
		return 0, w.Err
	}

	w.Loading = true
	defer func() { w.Loading = false }()

	total := w.Total()
	seats := make([]model.Seat, len(w.Selected))
	for i, s := range w.Selected {
		seats[i] = model.Seat{Row: s.Row, Number: s.Number, Status: model.SeatBooked}
	}
	_, err := w.client.CreateBooking(ctx, api.BookingRequest{
		ShowtimeID:  w.Showtime.ID,
		Seats:       seats,
		TotalAmount: total,
	})
	if err != nil {
		w.Err = err
		return 0, err
	}

	w.Selected = nil
	if bookings, err := w.client.Bookings(ctx); err != nil {
		log.Printf("booking list refresh failed: %v", err)
	} else {
		w.Bookings = bookings
	}
	return total, nil
}

// FetchBookings retrieves the session user's bookings.
func (w *Workflow) FetchBookings(ctx context.Context) error {
	w.Err = nil
	w.Loading = true
	defer func() { w.Loading = false }()

	bookings, err := w.client.Bookings(ctx)
	if err != nil {
		w.Err = err
		return err
	}
	w.Bookings = bookings
	return nil
}

// GetBookingByID returns a booking from the local list when present,
// otherwise fetches it from the API.
func (w *Workflow) GetBookingByID(ctx context.Context, id string) (model.Booking, error) {
	w.Err = nil
	for _, b := range w.Bookings {
		if b.ID == id {
			return b, nil
		}
	}
	w.Loading = true
	defer func() { w.Loading = false }()

	b, err := w.client.Booking(ctx, id)
	if err != nil {
		w.Err = err
		return model.Booking{}, err
	}
	return b, nil
}

// CancelBooking cancels the booking and removes it from the local list.
// Only the booking with the given id is removed.
func (w *Workflow) CancelBooking(ctx context.Context, id string) error {
	w.Err = nil
	w.Loading = true
	defer func() { w.Loading = false }()

	if _, err := w.client.CancelBooking(ctx, id); err != nil {
		w.Err = err
		return err
	}
	for i, b := range w.Bookings {
		if b.ID == id {
			w.Bookings = append(w.Bookings[:i], w.Bookings[i+1:]...)
			break
		}
	}
	return nil
}

// ClearSelection resets the whole flow: movie, showtimes, showtime,
// seat map and selected seats.  The booking list is kept.
func (w *Workflow) ClearSelection() {
	w.Movie = nil
	w.Showtime = nil
	w.Showtimes = nil
	w.Seats = nil
	w.Selected = nil
}

// ClearError resets the last recorded error.
func (w *Workflow) ClearError() { w.Err = nil }
