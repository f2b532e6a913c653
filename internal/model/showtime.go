package model

import "time"

// Showtime represents a scheduled screening of a movie at a theatre.
// Each showtime carries its own ticket price and an available-seat
// counter that is decremented when bookings are confirmed and
// restored when they are cancelled.
//
// Fields:
//  ID             – UUID string identifier.
//  MovieID        – movie being screened.
//  TheatreID      – theatre hosting the screening.
//  ShowDate       – date and time of the screening.
//  Price          – ticket price per seat.
//  AvailableSeats – seats still open for booking.
//  CreatedAt      – timestamp when the record was created.
//  UpdatedAt      – timestamp of last update.
type Showtime struct {
	ID             string    `json:"id"`
	MovieID        string    `json:"movieId"`
	TheatreID      string    `json:"theatreId"`
	ShowDate       time.Time `json:"showDate"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
