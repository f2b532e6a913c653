package model

import "time"

// Theatre represents a venue with a fixed rectangular seat layout.
// The seat map for any showtime in the theatre is derived from Rows
// and SeatsPerRow; there is no per-seat table.  Rows × SeatsPerRow is
// expected to equal TotalSeats, although this is not enforced.
//
// Fields:
//  ID          – UUID string identifier.
//  Name        – theatre name.
//  Location    – city or area of the theatre.
//  TotalSeats  – total seat capacity.
//  Rows        – number of seating rows (labelled A, B, C, ...).
//  SeatsPerRow – seats in each row, numbered from 1.
//  CreatedAt   – timestamp when the record was created.
//  UpdatedAt   – timestamp of last update.
type Theatre struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	TotalSeats  int       `json:"totalSeats"`
	Rows        int       `json:"rows"`
	SeatsPerRow int       `json:"seatsPerRow"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
