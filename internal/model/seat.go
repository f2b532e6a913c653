package model

import "strconv"

// Seat statuses carried on the wire.  SeatSelected never leaves the
// client: it is derived view state while a user assembles a booking.
const (
	SeatAvailable = "available"
	SeatBooked    = "booked"
	SeatSelected  = "selected"
)

// Seat describes one seat in a showtime's seat map.  A seat has no
// identifier of its own; it is identified by the (Row, Number) pair
// within a single showtime.
//
// Fields:
//  Row    – row label (A, B, C, ...).
//  Number – seat number within the row, starting at 1.
//  Status – one of SeatAvailable or SeatBooked.
type Seat struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// Label returns the human-readable seat identity, e.g. "A1".
func (s Seat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}

// SameSeat reports whether two seats refer to the same physical seat
// within a showtime, ignoring status.
func (s Seat) SameSeat(o Seat) bool {
	return s.Row == o.Row && s.Number == o.Number
}
