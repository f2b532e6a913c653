// Package seed holds the sample catalog used to bootstrap a fresh
// database: six movies, three theatres and a full grid of showtimes
// (every movie at every theatre at four daily slots).
package seed

import (
	"time"

	"github.com/iliyamo/movie-booking/internal/model"
)

// TicketPrice is the flat price applied to every seeded showtime.
const TicketPrice = 250.0

// Slots are the daily screening times, expressed as offsets from
// midnight UTC.
var Slots = []time.Duration{
	10 * time.Hour,                // 10:00 AM
	13*time.Hour + 30*time.Minute, // 1:30 PM
	17 * time.Hour,                // 5:00 PM
	20*time.Hour + 30*time.Minute, // 8:30 PM
}

// Movies returns the sample movie catalog.  IDs are left empty; the
// repository assigns UUIDs on insert.
func Movies() []model.Movie {
	return []model.Movie{
		{
			Title:       "The Dark Knight",
			Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
			Genre:       "Action",
			Rating:      9.0,
			Duration:    152,
			Language:    "English",
			PosterURL:   "https://images.pexels.com/photos/3137890/pexels-photo-3137890.jpeg",
			ReleaseDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			Genre:       "Sci-Fi",
			Rating:      8.8,
			Duration:    148,
			Language:    "English",
			PosterURL:   "https://images.unsplash.com/photo-1572188863110-46d457c9234d",
			ReleaseDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Interstellar",
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			Genre:       "Sci-Fi",
			Rating:      8.6,
			Duration:    169,
			Language:    "English",
			PosterURL:   "https://images.pexels.com/photos/109669/pexels-photo-109669.jpeg",
			ReleaseDate: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Avengers: Endgame",
			Description: "After the devastating events of Infinity War, the Avengers assemble once more to reverse Thanos' actions and restore balance to the universe.",
			Genre:       "Action",
			Rating:      8.4,
			Duration:    181,
			Language:    "English",
			PosterURL:   "https://images.pexels.com/photos/33129/popcorn-movie-party-entertainment.jpg",
			ReleaseDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Spider-Man: No Way Home",
			Description: "Spider-Man's identity is revealed and he asks Doctor Strange for help, but when a spell goes wrong, dangerous foes from other worlds appear.",
			Genre:       "Action",
			Rating:      8.2,
			Duration:    148,
			Language:    "English",
			PosterURL:   "https://images.pexels.com/photos/375885/pexels-photo-375885.jpeg",
			ReleaseDate: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Dune",
			Description: "Paul Atreides leads nomadic tribes in a revolt against the evil Harkonnen oppressors on the desert planet Arrakis.",
			Genre:       "Sci-Fi",
			Rating:      8.0,
			Duration:    155,
			Language:    "English",
			PosterURL:   "https://images.unsplash.com/photo-1517604931442-7e0c8ed2963c",
			ReleaseDate: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Theatres returns the sample theatre list.
func Theatres() []model.Theatre {
	return []model.Theatre{
		{Name: "PVR Cinemas", Location: "Mumbai", TotalSeats: 100, Rows: 10, SeatsPerRow: 10},
		{Name: "INOX", Location: "Delhi", TotalSeats: 80, Rows: 8, SeatsPerRow: 10},
		{Name: "Cinepolis", Location: "Bangalore", TotalSeats: 120, Rows: 12, SeatsPerRow: 10},
	}
}

// BuildShowtimes crosses the given movies and theatres with every slot
// on the given day, producing one showtime per combination.  Each
// showtime inherits the theatre's capacity as its available-seat count
// and is priced at TicketPrice.  The movies and theatres must already
// carry their database IDs.
func BuildShowtimes(movies []model.Movie, theatres []model.Theatre, day time.Time) []model.Showtime {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]model.Showtime, 0, len(movies)*len(theatres)*len(Slots))
	for _, m := range movies {
		for _, t := range theatres {
			for _, slot := range Slots {
				out = append(out, model.Showtime{
					MovieID:        m.ID,
					TheatreID:      t.ID,
					ShowDate:       midnight.Add(slot),
					Price:          TicketPrice,
					AvailableSeats: t.TotalSeats,
				})
			}
		}
	}
	return out
}
