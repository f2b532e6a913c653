package model

import "time"

// Booking statuses.  New bookings are confirmed immediately; there is
// no payment step that would leave them pending.  Cancelled bookings
// keep their row and release their seats back to the showtime.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingPending   = "pending"
)

// Booking records a user's reservation of one or more seats for a
// showtime.  The seats are embedded rather than referenced: a seat
// only exists as part of the theatre geometry, so the booking carries
// the full (row, number) list it claimed.
//
// Fields:
//  ID          – UUID string identifier.
//  UserID      – owner of the booking.
//  ShowtimeID  – showtime the seats belong to.
//  Seats       – seats claimed by this booking.
//  TotalAmount – seats × showtime price at booking time.
//  Status      – one of BookingConfirmed, BookingCancelled, BookingPending.
//  BookingDate – timestamp when the booking was made.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ShowtimeID  string    `json:"showtimeId"`
	Seats       []Seat    `json:"seats"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"bookingDate"`
}

// IsConfirmed reports whether the booking is still active.
// Cancellation is only offered for confirmed bookings.
func (b Booking) IsConfirmed() bool { return b.Status == BookingConfirmed }

// IsCancelled reports whether the booking has been cancelled.
func (b Booking) IsCancelled() bool { return b.Status == BookingCancelled }
