package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-booking/internal/model"
)

// MovieRepo encapsulates database operations for movies.
type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

const movieColumns = "id,title,description,genre,rating,duration,language,poster_url,release_date,created_at,updated_at"

func scanMovie(row interface{ Scan(...any) error }) (model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Genre, &m.Rating,
		&m.Duration, &m.Language, &m.PosterURL, &m.ReleaseDate, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Create inserts a movie and returns it with the generated id and
// timestamps filled in.
func (r *MovieRepo) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	m.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	m.CreatedAt, m.UpdatedAt = now, now
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO movies (id,title,description,genre,rating,duration,language,poster_url,release_date,created_at,updated_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		m.ID, m.Title, m.Description, m.Genre, m.Rating, m.Duration, m.Language,
		m.PosterURL, m.ReleaseDate, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return model.Movie{}, err
	}
	return m, nil
}

// ListAll returns every movie ordered by release date.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies ORDER BY release_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// GetByID fetches a single movie, mapping sql.ErrNoRows to ErrMovieNotFound.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (model.Movie, error) {
	m, err := scanMovie(r.DB.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, err
}
