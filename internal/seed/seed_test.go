package seed

import (
	"testing"
	"time"
)

func TestCorpusShape(t *testing.T) {
	movies := Movies()
	if len(movies) != 6 {
		t.Fatalf("expected 6 movies, got %d", len(movies))
	}
	for _, m := range movies {
		if m.Title == "" || m.Genre == "" || m.Language == "" {
			t.Errorf("movie %+v missing required fields", m)
		}
		if m.Rating < 0 || m.Rating > 10 {
			t.Errorf("movie %q rating %v out of range", m.Title, m.Rating)
		}
		if m.Duration <= 0 {
			t.Errorf("movie %q has non-positive duration", m.Title)
		}
	}

	theatres := Theatres()
	if len(theatres) != 3 {
		t.Fatalf("expected 3 theatres, got %d", len(theatres))
	}
	for _, th := range theatres {
		if th.Rows*th.SeatsPerRow != th.TotalSeats {
			t.Errorf("theatre %q geometry %dx%d does not match capacity %d",
				th.Name, th.Rows, th.SeatsPerRow, th.TotalSeats)
		}
	}
}

func TestBuildShowtimes(t *testing.T) {
	movies := Movies()
	for i := range movies {
		movies[i].ID = "m" + movies[i].Genre + movies[i].Title
	}
	theatres := Theatres()
	for i := range theatres {
		theatres[i].ID = "t" + theatres[i].Name
	}

	day := time.Date(2026, 3, 16, 15, 4, 5, 0, time.UTC)
	shows := BuildShowtimes(movies, theatres, day)

	if want := 6 * 3 * 4; len(shows) != want {
		t.Fatalf("expected %d showtimes, got %d", want, len(shows))
	}

	capacity := map[string]int{}
	for _, th := range theatres {
		capacity[th.ID] = th.TotalSeats
	}
	slotSet := map[time.Duration]bool{}
	for _, s := range Slots {
		slotSet[s] = true
	}
	midnight := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for _, s := range shows {
		if s.Price != TicketPrice {
			t.Errorf("showtime price %v, want %v", s.Price, TicketPrice)
		}
		if s.AvailableSeats != capacity[s.TheatreID] {
			t.Errorf("showtime for theatre %s has %d available seats, want %d",
				s.TheatreID, s.AvailableSeats, capacity[s.TheatreID])
		}
		if !slotSet[s.ShowDate.Sub(midnight)] {
			t.Errorf("showtime at %v does not fall on a known slot", s.ShowDate)
		}
		key := s.MovieID + "|" + s.TheatreID + "|" + s.ShowDate.String()
		if seen[key] {
			t.Errorf("duplicate showtime %s", key)
		}
		seen[key] = true
	}
}
