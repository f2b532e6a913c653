package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-booking/internal/model"
)

// TheatreRepo encapsulates database operations for theatres.
type TheatreRepo struct{ DB *sql.DB }

func NewTheatreRepo(db *sql.DB) *TheatreRepo { return &TheatreRepo{DB: db} }

const theatreColumns = "id,name,location,total_seats,seat_rows,seats_per_row,created_at,updated_at"

func scanTheatre(row interface{ Scan(...any) error }) (model.Theatre, error) {
	var t model.Theatre
	err := row.Scan(&t.ID, &t.Name, &t.Location, &t.TotalSeats, &t.Rows,
		&t.SeatsPerRow, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a theatre and returns it with the generated id.
func (r *TheatreRepo) Create(ctx context.Context, t model.Theatre) (model.Theatre, error) {
	t.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	t.CreatedAt, t.UpdatedAt = now, now
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO theatres (id,name,location,total_seats,seat_rows,seats_per_row,created_at,updated_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		t.ID, t.Name, t.Location, t.TotalSeats, t.Rows, t.SeatsPerRow, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return model.Theatre{}, err
	}
	return t, nil
}

// ListAll returns every theatre ordered by name.
func (r *TheatreRepo) ListAll(ctx context.Context) ([]model.Theatre, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+theatreColumns+" FROM theatres ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	theatres := make([]model.Theatre, 0)
	for rows.Next() {
		t, err := scanTheatre(rows)
		if err != nil {
			return nil, err
		}
		theatres = append(theatres, t)
	}
	return theatres, rows.Err()
}

// GetByID fetches a single theatre, mapping sql.ErrNoRows to ErrTheatreNotFound.
func (r *TheatreRepo) GetByID(ctx context.Context, id string) (model.Theatre, error) {
	t, err := scanTheatre(r.DB.QueryRowContext(ctx,
		"SELECT "+theatreColumns+" FROM theatres WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Theatre{}, ErrTheatreNotFound
	}
	return t, err
}
