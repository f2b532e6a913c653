// Command seed resets the catalog tables and loads the sample data:
// six movies, three theatres and a showtime for every movie/theatre/slot
// combination on the following day.  Optionally creates an admin user
// when ADMIN_EMAIL and ADMIN_PASSWORD are set.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/movie-booking/internal/config"
	"github.com/iliyamo/movie-booking/internal/database"
	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/repository"
	"github.com/iliyamo/movie-booking/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Schema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	// Bookings reference showtimes, so clear them first.
	for _, table := range []string{"booking_seats", "bookings", "showtimes", "theatres", "movies"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("clear %s: %v", table, err)
		}
	}

	movieRepo := repository.NewMovieRepo(db)
	theatreRepo := repository.NewTheatreRepo(db)
	showtimeRepo := repository.NewShowtimeRepo(db)

	movies := make([]model.Movie, 0, 6)
	for _, m := range seed.Movies() {
		created, err := movieRepo.Create(ctx, m)
		if err != nil {
			log.Fatalf("insert movie %q: %v", m.Title, err)
		}
		movies = append(movies, created)
	}
	log.Printf("inserted %d movies", len(movies))

	theatres := make([]model.Theatre, 0, 3)
	for _, t := range seed.Theatres() {
		created, err := theatreRepo.Create(ctx, t)
		if err != nil {
			log.Fatalf("insert theatre %q: %v", t.Name, err)
		}
		theatres = append(theatres, created)
	}
	log.Printf("inserted %d theatres", len(theatres))

	day := time.Now().UTC().AddDate(0, 0, 1)
	showtimes := seed.BuildShowtimes(movies, theatres, day)
	for _, s := range showtimes {
		if _, err := showtimeRepo.Create(ctx, s); err != nil {
			log.Fatalf("insert showtime: %v", err)
		}
	}
	log.Printf("inserted %d showtimes for %s", len(showtimes), day.Format("2006-01-02"))

	if email, pass := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && pass != "" {
		users := repository.NewUserRepo(db)
		_, err := users.Create(ctx, "Admin", email, pass, model.RoleAdmin, cfg.BcryptCost)
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			log.Printf("admin user %s already exists", email)
		case err != nil:
			log.Fatalf("create admin user: %v", err)
		default:
			log.Printf("created admin user %s", email)
		}
	}

	log.Println("seed completed")
}
