package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-booking/internal/model"
)

// BookingRepo encapsulates database operations for bookings and the seats
// they claim.  Seat-claiming operations run inside transactions so the
// booking row, its seats and the showtime counter move together.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// CreateTx inserts a booking and its seats inside the given transaction.
// The booking id and date are generated here; the passed value is returned
// with both filled in.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b model.Booking) (model.Booking, error) {
	b.ID = uuid.New().String()
	b.Status = model.BookingConfirmed
	b.BookingDate = time.Now().UTC().Truncate(time.Second)
	_, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (id,user_id,showtime_id,total_amount,status,booking_date) VALUES (?,?,?,?,?,?)",
		b.ID, b.UserID, b.ShowtimeID, b.TotalAmount, b.Status, b.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}
	if len(b.Seats) > 0 {
		query := "INSERT INTO booking_seats (booking_id,row_label,seat_number,status) VALUES "
		args := make([]any, 0, len(b.Seats)*4)
		for i, s := range b.Seats {
			if i > 0 {
				query += ","
			}
			query += "(?,?,?,?)"
			args = append(args, b.ID, s.Row, s.Number, model.SeatBooked)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return model.Booking{}, err
		}
	}
	return b, nil
}

// BookedSeatsByShowtimeTx returns every seat claimed by a confirmed booking
// for the showtime.  It is used both to derive the public seat map and to
// reject bookings that request an already-claimed seat.
func (r *BookingRepo) BookedSeatsByShowtimeTx(ctx context.Context, tx *sql.Tx, showtimeID string) ([]model.Seat, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT bs.row_label, bs.seat_number FROM booking_seats bs
		 JOIN bookings b ON b.id = bs.booking_id
		 WHERE b.showtime_id=? AND b.status=?`,
		showtimeID, model.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeats(rows)
}

// BookedSeatsByShowtime is the non-transactional variant used for the
// public seat map.
func (r *BookingRepo) BookedSeatsByShowtime(ctx context.Context, showtimeID string) ([]model.Seat, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT bs.row_label, bs.seat_number FROM booking_seats bs
		 JOIN bookings b ON b.id = bs.booking_id
		 WHERE b.showtime_id=? AND b.status=?`,
		showtimeID, model.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeats(rows)
}

func collectSeats(rows *sql.Rows) ([]model.Seat, error) {
	seats := make([]model.Seat, 0)
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.Row, &s.Number); err != nil {
			return nil, err
		}
		s.Status = model.SeatBooked
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// ListByUser returns all bookings made by a user, newest first, each with
// its seats attached.
func (r *BookingRepo) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,user_id,showtime_id,total_amount,status,booking_date
		 FROM bookings WHERE user_id=? ORDER BY booking_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ShowtimeID, &b.TotalAmount, &b.Status, &b.BookingDate); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range bookings {
		seats, err := r.seatsOf(ctx, bookings[i].ID)
		if err != nil {
			return nil, err
		}
		bookings[i].Seats = seats
	}
	return bookings, nil
}

// GetByID fetches one booking with its seats, mapping sql.ErrNoRows to
// ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		`SELECT id,user_id,showtime_id,total_amount,status,booking_date
		 FROM bookings WHERE id=? LIMIT 1`, id).
		Scan(&b.ID, &b.UserID, &b.ShowtimeID, &b.TotalAmount, &b.Status, &b.BookingDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	b.Seats, err = r.seatsOf(ctx, b.ID)
	return b, err
}

func (r *BookingRepo) seatsOf(ctx context.Context, bookingID string) ([]model.Seat, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT row_label,seat_number,status FROM booking_seats WHERE booking_id=? ORDER BY id",
		bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]model.Seat, 0)
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.Row, &s.Number, &s.Status); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// CancelTx marks a booking cancelled inside the given transaction and
// returns the updated booking.  The caller releases the showtime's seats.
// Returns ErrForbidden when the booking belongs to another user and
// ErrAlreadyCancelled when it is not in the confirmed state.
func (r *BookingRepo) CancelTx(ctx context.Context, tx *sql.Tx, id, userID string) (model.Booking, error) {
	var b model.Booking
	err := tx.QueryRowContext(ctx,
		`SELECT id,user_id,showtime_id,total_amount,status,booking_date
		 FROM bookings WHERE id=? LIMIT 1 FOR UPDATE`, id).
		Scan(&b.ID, &b.UserID, &b.ShowtimeID, &b.TotalAmount, &b.Status, &b.BookingDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	if b.UserID != userID {
		return model.Booking{}, ErrForbidden
	}
	if b.Status != model.BookingConfirmed {
		return model.Booking{}, ErrAlreadyCancelled
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", model.BookingCancelled, id); err != nil {
		return model.Booking{}, err
	}
	b.Status = model.BookingCancelled
	rows, err := tx.QueryContext(ctx,
		"SELECT row_label,seat_number,status FROM booking_seats WHERE booking_id=? ORDER BY id", id)
	if err != nil {
		return model.Booking{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.Row, &s.Number, &s.Status); err != nil {
			return model.Booking{}, err
		}
		b.Seats = append(b.Seats, s)
	}
	return b, rows.Err()
}
