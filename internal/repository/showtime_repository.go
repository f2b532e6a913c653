package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-booking/internal/model"
)

// ShowtimeRepo encapsulates database operations for showtimes.
type ShowtimeRepo struct{ DB *sql.DB }

func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo { return &ShowtimeRepo{DB: db} }

const showtimeColumns = "id,movie_id,theatre_id,show_date,price,available_seats,created_at,updated_at"

func scanShowtime(row interface{ Scan(...any) error }) (model.Showtime, error) {
	var s model.Showtime
	err := row.Scan(&s.ID, &s.MovieID, &s.TheatreID, &s.ShowDate, &s.Price,
		&s.AvailableSeats, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create inserts a showtime.  The caller is expected to have resolved the
// theatre first and set AvailableSeats to the theatre's total seat count.
func (r *ShowtimeRepo) Create(ctx context.Context, s model.Showtime) (model.Showtime, error) {
	s.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	s.CreatedAt, s.UpdatedAt = now, now
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO showtimes (id,movie_id,theatre_id,show_date,price,available_seats,created_at,updated_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		s.ID, s.MovieID, s.TheatreID, s.ShowDate, s.Price, s.AvailableSeats, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return model.Showtime{}, err
	}
	return s, nil
}

// List returns showtimes, optionally filtered by movie and/or theatre.
// Empty filter values mean "all".  Results are ordered by show date.
func (r *ShowtimeRepo) List(ctx context.Context, movieID, theatreID string) ([]model.Showtime, error) {
	query := "SELECT " + showtimeColumns + " FROM showtimes"
	var (
		clauses []string
		args    []any
	)
	if movieID != "" {
		clauses = append(clauses, "movie_id=?")
		args = append(args, movieID)
	}
	if theatreID != "" {
		clauses = append(clauses, "theatre_id=?")
		args = append(args, theatreID)
	}
	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY show_date"
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	showtimes := make([]model.Showtime, 0)
	for rows.Next() {
		s, err := scanShowtime(rows)
		if err != nil {
			return nil, err
		}
		showtimes = append(showtimes, s)
	}
	return showtimes, rows.Err()
}

// GetByID fetches a single showtime, mapping sql.ErrNoRows to
// ErrShowtimeNotFound.
func (r *ShowtimeRepo) GetByID(ctx context.Context, id string) (model.Showtime, error) {
	s, err := scanShowtime(r.DB.QueryRowContext(ctx,
		"SELECT "+showtimeColumns+" FROM showtimes WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Showtime{}, ErrShowtimeNotFound
	}
	return s, err
}

// AdjustAvailableSeatsTx changes a showtime's available-seat counter inside
// a transaction.  Negative delta books seats, positive releases them.  The
// WHERE guard keeps the counter from going below zero under concurrent
// bookings; zero rows affected means there were not enough seats left.
func (r *ShowtimeRepo) AdjustAvailableSeatsTx(ctx context.Context, tx *sql.Tx, id string, delta int) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE showtimes SET available_seats = available_seats + ? WHERE id=? AND available_seats + ? >= 0",
		delta, id, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotEnoughSeats
	}
	return nil
}
