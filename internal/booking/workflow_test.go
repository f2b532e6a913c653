package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/iliyamo/movie-booking/internal/api"
	"github.com/iliyamo/movie-booking/internal/model"
)

func seat(row string, number int, status string) model.Seat {
	return model.Seat{Row: row, Number: number, Status: status}
}

func selectionLabels(w *Workflow) []string {
	labels := make([]string, len(w.Selected))
	for i, s := range w.Selected {
		labels[i] = s.Label()
	}
	return labels
}

func equalLabels(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// testBackend is a minimal in-memory stand-in for the booking API.
type testBackend struct {
	showtimes     []model.Showtime
	seats         []model.Seat
	bookings      []model.Booking
	failShowtimes bool
	failBooking   string // error message returned by POST /api/bookings
	requests      int32  // booking creation requests observed
}

func (b *testBackend) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/showtimes", func(w http.ResponseWriter, r *http.Request) {
		if b.failShowtimes {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "showtimes unavailable", "success": false})
			return
		}
		_ = json.NewEncoder(w).Encode(b.showtimes)
	})
	mux.HandleFunc("GET /api/showtimes/{id}/seats", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.SeatMap{ShowtimeID: r.PathValue("id"), Seats: b.seats})
	})
	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.requests, 1)
		if b.failBooking != "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": b.failBooking, "success": false})
			return
		}
		var req api.BookingRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		created := model.Booking{
			ID:          "bk-1",
			ShowtimeID:  req.ShowtimeID,
			Seats:       req.Seats,
			TotalAmount: req.TotalAmount,
			Status:      model.BookingConfirmed,
		}
		b.bookings = append(b.bookings, created)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	})
	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(b.bookings)
	})
	mux.HandleFunc("DELETE /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for i, bk := range b.bookings {
			if bk.ID == id {
				bk.Status = model.BookingCancelled
				b.bookings = append(b.bookings[:i], b.bookings[i+1:]...)
				_ = json.NewEncoder(w).Encode(bk)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Booking not found", "success": false})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestWorkflow(t *testing.T, b *testBackend) *Workflow {
	t.Helper()
	srv := b.server(t)
	return NewWorkflow(api.NewClient(srv.URL, srv.Client()))
}

func TestToggleSeatTwiceRestoresSelection(t *testing.T) {
	w := NewWorkflow(nil)
	w.ToggleSeat(seat("A", 1, model.SeatAvailable))
	w.ToggleSeat(seat("B", 4, model.SeatAvailable))

	w.ToggleSeat(seat("C", 2, model.SeatAvailable))
	w.ToggleSeat(seat("C", 2, model.SeatAvailable))

	if got := selectionLabels(w); !equalLabels(got, []string{"A1", "B4"}) {
		t.Fatalf("selection after double toggle: %v", got)
	}
}

func TestToggleBookedSeatIsIgnored(t *testing.T) {
	w := NewWorkflow(nil)
	w.ToggleSeat(seat("A", 1, model.SeatAvailable))
	w.ToggleSeat(seat("A", 2, model.SeatBooked))

	if got := selectionLabels(w); !equalLabels(got, []string{"A1"}) {
		t.Fatalf("selection changed by booked seat: %v", got)
	}
}

func TestDeselectionPreservesPickOrder(t *testing.T) {
	w := NewWorkflow(nil)
	w.ToggleSeat(seat("C", 3, model.SeatAvailable))
	w.ToggleSeat(seat("A", 1, model.SeatAvailable))
	w.ToggleSeat(seat("B", 2, model.SeatAvailable))

	w.ToggleSeat(seat("A", 1, model.SeatAvailable)) // deselect the middle pick

	if got := selectionLabels(w); !equalLabels(got, []string{"C3", "B2"}) {
		t.Fatalf("selection after deselect: %v", got)
	}
}

func TestTotalIsSeatCountTimesPrice(t *testing.T) {
	w := NewWorkflow(nil)
	w.Showtime = &model.Showtime{ID: "st-1", Price: 250}
	for i := 1; i <= 3; i++ {
		w.ToggleSeat(seat("A", i, model.SeatAvailable))
	}
	if got := w.Total(); got != 750 {
		t.Fatalf("total = %v, want 750", got)
	}
}

func TestBookTicketsWithoutSeatsSendsNoRequest(t *testing.T) {
	backend := &testBackend{}
	w := newTestWorkflow(t, backend)
	w.Showtime = &model.Showtime{ID: "st-1", Price: 250}

	total, err := w.BookTickets(context.Background())
	if err == nil {
		t.Fatal("expected error for empty selection")
	}
	if err.Error() == "" {
		t.Fatal("expected non-empty error message")
	}
	if total != 0 {
		t.Fatalf("total = %v, want 0", total)
	}
	if backend.requests != 0 {
		t.Fatalf("expected no booking request, got %d", backend.requests)
	}
}

func TestBookTicketsSuccessClearsSelectionKeepsContext(t *testing.T) {
	backend := &testBackend{}
	w := newTestWorkflow(t, backend)
	movie := model.Movie{ID: "mv-1", Title: "Inception"}
	showtime := model.Showtime{ID: "st-1", Price: 250}
	w.Movie = &movie
	w.Showtime = &showtime
	w.ToggleSeat(seat("A", 1, model.SeatAvailable))
	w.ToggleSeat(seat("A", 3, model.SeatAvailable))

	total, err := w.BookTickets(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if total != 500 {
		t.Fatalf("total = %v, want 500", total)
	}
	if len(w.Selected) != 0 {
		t.Fatalf("selection not cleared: %v", selectionLabels(w))
	}
	if w.Movie == nil || w.Movie.ID != "mv-1" {
		t.Fatal("movie selection changed by booking")
	}
	if w.Showtime == nil || w.Showtime.ID != "st-1" {
		t.Fatal("showtime selection changed by booking")
	}
	if len(w.Bookings) != 1 {
		t.Fatalf("expected refreshed booking list, got %d entries", len(w.Bookings))
	}
}

func TestBookTicketsFailureRetainsSelection(t *testing.T) {
	backend := &testBackend{failBooking: "Seat A1 is already booked"}
	w := newTestWorkflow(t, backend)
	w.Showtime = &model.Showtime{ID: "st-1", Price: 250}
	w.ToggleSeat(seat("A", 1, model.SeatAvailable))
	w.ToggleSeat(seat("A", 3, model.SeatAvailable))

	_, err := w.BookTickets(context.Background())
	if err == nil {
		t.Fatal("expected booking failure")
	}
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Seat A1 is already booked" {
		t.Fatalf("expected server message to surface, got %v", err)
	}
	if got := selectionLabels(w); !equalLabels(got, []string{"A1", "A3"}) {
		t.Fatalf("selection not retained after failure: %v", got)
	}
}

func TestCancelBookingRemovesExactlyOne(t *testing.T) {
	backend := &testBackend{bookings: []model.Booking{
		{ID: "bk-1", Status: model.BookingConfirmed},
		{ID: "bk-2", Status: model.BookingConfirmed},
		{ID: "bk-3", Status: model.BookingConfirmed},
	}}
	w := newTestWorkflow(t, backend)
	if err := w.FetchBookings(context.Background()); err != nil {
		t.Fatalf("fetch bookings: %v", err)
	}

	if err := w.CancelBooking(context.Background(), "bk-2"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(w.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(w.Bookings))
	}
	for _, b := range w.Bookings {
		if b.ID == "bk-2" {
			t.Fatal("cancelled booking still in list")
		}
	}
}

func TestSelectMovieCommitsEvenWhenFetchFails(t *testing.T) {
	backend := &testBackend{failShowtimes: true}
	w := newTestWorkflow(t, backend)
	movie := model.Movie{ID: "mv-1", Title: "Dune"}

	err := w.SelectMovie(context.Background(), movie)
	if err == nil {
		t.Fatal("expected showtime fetch to fail")
	}
	if w.Movie == nil || w.Movie.ID != "mv-1" {
		t.Fatal("movie selection did not commit")
	}
	if len(w.Showtimes) != 0 {
		t.Fatalf("expected empty showtime list, got %d", len(w.Showtimes))
	}
	if w.Err == nil {
		t.Fatal("expected recorded error")
	}
}

func TestSelectShowtimeLoadsSeatMap(t *testing.T) {
	backend := &testBackend{seats: []model.Seat{
		seat("A", 1, model.SeatAvailable),
		seat("A", 2, model.SeatBooked),
		seat("A", 3, model.SeatAvailable),
	}}
	w := newTestWorkflow(t, backend)

	if err := w.SelectShowtime(context.Background(), model.Showtime{ID: "st-1", Price: 250}); err != nil {
		t.Fatalf("select showtime: %v", err)
	}
	if len(w.Seats) != 3 {
		t.Fatalf("expected 3 seats, got %d", len(w.Seats))
	}

	// Example flow: pick A1 and A3, try the booked A2, expect 500 total.
	w.ToggleSeat(w.Seats[0])
	w.ToggleSeat(w.Seats[2])
	w.ToggleSeat(w.Seats[1])

	if got := selectionLabels(w); !equalLabels(got, []string{"A1", "A3"}) {
		t.Fatalf("selection = %v, want [A1 A3]", got)
	}
	if got := w.Total(); got != 500 {
		t.Fatalf("total = %v, want 500", got)
	}
}

func TestClearSelectionResetsFlow(t *testing.T) {
	w := NewWorkflow(nil)
	movie := model.Movie{ID: "mv-1"}
	showtime := model.Showtime{ID: "st-1"}
	w.Movie = &movie
	w.Showtime = &showtime
	w.Showtimes = []model.Showtime{showtime}
	w.Seats = []model.Seat{seat("A", 1, model.SeatAvailable)}
	w.ToggleSeat(seat("A", 1, model.SeatAvailable))
	w.Bookings = []model.Booking{{ID: "bk-1"}}

	w.ClearSelection()

	if w.Movie != nil || w.Showtime != nil || w.Showtimes != nil || w.Seats != nil || w.Selected != nil {
		t.Fatal("selection state not fully reset")
	}
	if len(w.Bookings) != 1 {
		t.Fatal("booking list should survive ClearSelection")
	}
}
