// Package queue defines the message payloads exchanged over the broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// created.  It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   string   `json:"booking_id"`
	UserID      string   `json:"user_id"`
	ShowtimeID  string   `json:"showtime_id"`
	MovieTitle  string   `json:"movie_title"`
	TheatreName string   `json:"theatre_name"`
	ShowDate    string   `json:"show_date"`
	SeatLabels  []string `json:"seats"`
	TotalAmount float64  `json:"total_amount"`
	ConfirmedAt string   `json:"confirmed_at"`
}
