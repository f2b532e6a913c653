// Package repository implements persistence for the booking system on top
// of database/sql.  This file defines sentinel errors shared across the
// repositories.  Handlers use errors.Is against these values to pick the
// HTTP status for a failure instead of inspecting driver errors.
package repository

import "errors"

// ErrMovieNotFound is returned when a movie id does not exist.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTheatreNotFound is returned when a theatre id does not exist.
var ErrTheatreNotFound = errors.New("theatre not found")

// ErrShowtimeNotFound is returned when a showtime id does not exist.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrEmailExists is returned when registering with an email that is
// already taken.
var ErrEmailExists = errors.New("email already registered")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into a 403.
var ErrForbidden = errors.New("forbidden")

// ErrSeatTaken is returned when a booking requests a seat that a
// confirmed booking already claims.  The wrapped message names the seat.
var ErrSeatTaken = errors.New("seat already booked")

// ErrNotEnoughSeats is returned when a showtime does not have enough
// available seats left for the requested booking.
var ErrNotEnoughSeats = errors.New("not enough available seats")

// ErrAlreadyCancelled is returned when cancelling a booking twice.
var ErrAlreadyCancelled = errors.New("booking already cancelled")
