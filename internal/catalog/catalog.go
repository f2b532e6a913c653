// Package catalog holds the client-side list states for movies,
// theatres and showtimes.  Each state fetches its full list, supports
// creating one entity (appending the server's copy to the local list on
// success) and tracks its own loading flag and last error.  Like the
// rest of the client state, these types are driven from a single
// goroutine and are not safe for concurrent use.
package catalog

import (
	"context"

	"github.com/iliyamo/movie-booking/internal/api"
	"github.com/iliyamo/movie-booking/internal/model"
)

// MovieCatalog lists and creates movies.
type MovieCatalog struct {
	client *api.Client

	Movies  []model.Movie
	Loading bool
	Err     error
}

func NewMovieCatalog(client *api.Client) *MovieCatalog {
	return &MovieCatalog{client: client}
}

// FetchAll replaces the local list with the server's.
func (mc *MovieCatalog) FetchAll(ctx context.Context) error {
	mc.Err = nil
	mc.Loading = true
	defer func() { mc.Loading = false }()

	movies, err := mc.client.Movies(ctx)
	if err != nil {
		mc.Err = err
		return err
	}
	mc.Movies = movies
	return nil
}

// CreateOne submits a new movie and appends the created entity to the
// local list.  On failure the list is left unchanged.
func (mc *MovieCatalog) CreateOne(ctx context.Context, m model.Movie) (model.Movie, error) {
	mc.Err = nil
	mc.Loading = true
	defer func() { mc.Loading = false }()

	created, err := mc.client.CreateMovie(ctx, m)
	if err != nil {
		mc.Err = err
		return model.Movie{}, err
	}
	mc.Movies = append(mc.Movies, created)
	return created, nil
}

// GetByID returns a movie from the local list when present, otherwise
// fetches it from the API.
func (mc *MovieCatalog) GetByID(ctx context.Context, id string) (model.Movie, error) {
	mc.Err = nil
	for _, m := range mc.Movies {
		if m.ID == id {
			return m, nil
		}
	}
	mc.Loading = true
	defer func() { mc.Loading = false }()

	movie, err := mc.client.Movie(ctx, id)
	if err != nil {
		mc.Err = err
		return model.Movie{}, err
	}
	return movie, nil
}

// TheatreRegistry lists and creates theatres.
type TheatreRegistry struct {
	client *api.Client

	Theatres []model.Theatre
	Loading  bool
	Err      error
}

func NewTheatreRegistry(client *api.Client) *TheatreRegistry {
	return &TheatreRegistry{client: client}
}

func (tr *TheatreRegistry) FetchAll(ctx context.Context) error {
	tr.Err = nil
	tr.Loading = true
	defer func() { tr.Loading = false }()

	theatres, err := tr.client.Theatres(ctx)
	if err != nil {
		tr.Err = err
		return err
	}
	tr.Theatres = theatres
	return nil
}

func (tr *TheatreRegistry) CreateOne(ctx context.Context, t model.Theatre) (model.Theatre, error) {
	tr.Err = nil
	tr.Loading = true
	defer func() { tr.Loading = false }()

	created, err := tr.client.CreateTheatre(ctx, t)
	if err != nil {
		tr.Err = err
		return model.Theatre{}, err
	}
	tr.Theatres = append(tr.Theatres, created)
	return created, nil
}

// ShowtimeRegistry lists and creates showtimes.
type ShowtimeRegistry struct {
	client *api.Client

	Showtimes []model.Showtime
	Loading   bool
	Err       error
}

func NewShowtimeRegistry(client *api.Client) *ShowtimeRegistry {
	return &ShowtimeRegistry{client: client}
}

// FetchAll lists showtimes, optionally filtered by movie and/or theatre.
// Empty filter values list everything.
func (sr *ShowtimeRegistry) FetchAll(ctx context.Context, movieID, theatreID string) error {
	sr.Err = nil
	sr.Loading = true
	defer func() { sr.Loading = false }()

	showtimes, err := sr.client.Showtimes(ctx, movieID, theatreID)
	if err != nil {
		sr.Err = err
		return err
	}
	sr.Showtimes = showtimes
	return nil
}

func (sr *ShowtimeRegistry) CreateOne(ctx context.Context, s model.Showtime) (model.Showtime, error) {
	sr.Err = nil
	sr.Loading = true
	defer func() { sr.Loading = false }()

	created, err := sr.client.CreateShowtime(ctx, s)
	if err != nil {
		sr.Err = err
		return model.Showtime{}, err
	}
	sr.Showtimes = append(sr.Showtimes, created)
	return created, nil
}
