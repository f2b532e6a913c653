package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iliyamo/movie-booking/internal/api"
	"github.com/iliyamo/movie-booking/internal/model"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, srv.Client())
}

func TestMovieCatalogFetchAll(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Movie{{ID: "mv-1", Title: "Dune"}})
	})
	mc := NewMovieCatalog(newClient(t, handler))

	if err := mc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(mc.Movies) != 1 || mc.Movies[0].Title != "Dune" {
		t.Fatalf("movies = %+v", mc.Movies)
	}
	if mc.Loading {
		t.Fatal("loading flag still set")
	}
}

func TestMovieCatalogCreateOneAppends(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m model.Movie
		_ = json.NewDecoder(r.Body).Decode(&m)
		m.ID = "mv-2"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(m)
	})
	mc := NewMovieCatalog(newClient(t, handler))
	mc.Movies = []model.Movie{{ID: "mv-1", Title: "Dune"}}

	created, err := mc.CreateOne(context.Background(), model.Movie{Title: "Inception"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "mv-2" {
		t.Fatalf("created = %+v", created)
	}
	if len(mc.Movies) != 2 || mc.Movies[1].ID != "mv-2" {
		t.Fatalf("movies = %+v", mc.Movies)
	}
}

func TestMovieCatalogCreateFailureLeavesListUnchanged(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"title is required","success":false}`))
	})
	mc := NewMovieCatalog(newClient(t, handler))
	mc.Movies = []model.Movie{{ID: "mv-1", Title: "Dune"}}

	if _, err := mc.CreateOne(context.Background(), model.Movie{}); err == nil {
		t.Fatal("expected create failure")
	}
	if mc.Err == nil {
		t.Fatal("expected recorded error")
	}
	if len(mc.Movies) != 1 {
		t.Fatalf("list changed on failure: %+v", mc.Movies)
	}
}

func TestMovieCatalogGetByIDPrefersLocal(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_ = json.NewEncoder(w).Encode(model.Movie{ID: "mv-9", Title: "Remote"})
	})
	mc := NewMovieCatalog(newClient(t, handler))
	mc.Movies = []model.Movie{{ID: "mv-1", Title: "Dune"}}

	m, err := mc.GetByID(context.Background(), "mv-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Title != "Dune" || requests != 0 {
		t.Fatalf("expected local hit, got %+v after %d requests", m, requests)
	}

	m, err = mc.GetByID(context.Background(), "mv-9")
	if err != nil {
		t.Fatalf("get remote: %v", err)
	}
	if m.Title != "Remote" || requests != 1 {
		t.Fatalf("expected remote fetch, got %+v after %d requests", m, requests)
	}
}

func TestShowtimeRegistryFilters(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]model.Showtime{{ID: "st-1"}})
	})
	sr := NewShowtimeRegistry(newClient(t, handler))

	if err := sr.FetchAll(context.Background(), "mv-1", "th-1"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotQuery != "movieId=mv-1&theatreId=th-1" {
		t.Fatalf("query = %q", gotQuery)
	}
	if len(sr.Showtimes) != 1 {
		t.Fatalf("showtimes = %+v", sr.Showtimes)
	}
}

func TestTheatreRegistryCreateOne(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var th model.Theatre
		_ = json.NewDecoder(r.Body).Decode(&th)
		th.ID = "th-1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(th)
	})
	tr := NewTheatreRegistry(newClient(t, handler))

	created, err := tr.CreateOne(context.Background(), model.Theatre{Name: "INOX", Rows: 8, SeatsPerRow: 10, TotalSeats: 80})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "th-1" || len(tr.Theatres) != 1 {
		t.Fatalf("created=%+v theatres=%+v", created, tr.Theatres)
	}
}
