// Command bookctl is a terminal client for the booking service: browse
// the catalog, pick seats interactively and manage bookings, all from
// the shell.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iliyamo/movie-booking/internal/api"
	"github.com/iliyamo/movie-booking/internal/booking"
	"github.com/iliyamo/movie-booking/internal/catalog"
	"github.com/iliyamo/movie-booking/internal/session"
	"github.com/iliyamo/movie-booking/internal/store"
)

// app bundles the client-side state shared by every command.
type app struct {
	client    *api.Client
	session   *session.Session
	workflow  *booking.Workflow
	movies    *catalog.MovieCatalog
	theatres  *catalog.TheatreRegistry
	showtimes *catalog.ShowtimeRegistry
}

func newApp(baseURL string) (*app, error) {
	st, err := store.Default()
	if err != nil {
		return nil, fmt.Errorf("locate credential store: %w", err)
	}
	client := api.NewClient(baseURL, nil)
	return &app{
		client:    client,
		session:   session.New(client, st),
		workflow:  booking.NewWorkflow(client),
		movies:    catalog.NewMovieCatalog(client),
		theatres:  catalog.NewTheatreRegistry(client),
		showtimes: catalog.NewShowtimeRegistry(client),
	}, nil
}

func main() {
	var baseURL string
	var a *app

	rootCmd := &cobra.Command{
		Use:   "bookctl",
		Short: "Movie booking from the terminal",
		Long:  "Browse movies, pick a showtime, choose your seats and book, all without leaving the shell.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(baseURL)
			return err
		},
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "api", envOr("BOOKING_API_URL", "http://localhost:8080"), "base URL of the booking API")

	rootCmd.AddCommand(
		loginCmd(&a),
		registerCmd(&a),
		logoutCmd(&a),
		whoamiCmd(&a),
		moviesCmd(&a),
		theatresCmd(&a),
		showtimesCmd(&a),
		bookCmd(&a),
		bookingsCmd(&a),
		adminCmd(&a),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", errMessage(err))
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// errMessage unwraps API errors to the server-supplied message so the
// terminal output stays readable.
func errMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
