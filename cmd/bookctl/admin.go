package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/movie-booking/internal/model"
)

// adminCmd groups the catalog-management commands.  The API enforces
// the ADMIN role; these just collect the fields and submit.
func adminCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the catalog (requires the ADMIN role)",
	}
	cmd.AddCommand(addMovieCmd(a), addTheatreCmd(a), addShowtimeCmd(a))
	return cmd
}

func addMovieCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-movie",
		Short: "Create a movie",
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := promptText("Title", false)
			if err != nil {
				return err
			}
			description, err := promptText("Description", false)
			if err != nil {
				return err
			}
			genre, err := promptText("Genre", false)
			if err != nil {
				return err
			}
			rating, err := promptFloat("Rating (0-10)")
			if err != nil {
				return err
			}
			duration, err := promptInt("Duration (minutes)")
			if err != nil {
				return err
			}
			language, err := promptText("Language", false)
			if err != nil {
				return err
			}
			posterURL, err := promptText("Poster URL", false)
			if err != nil {
				return err
			}
			release, err := promptDate("Release date (YYYY-MM-DD)")
			if err != nil {
				return err
			}

			created, err := (*a).movies.CreateOne(context.Background(), model.Movie{
				Title:       title,
				Description: description,
				Genre:       genre,
				Rating:      rating,
				Duration:    duration,
				Language:    language,
				PosterURL:   posterURL,
				ReleaseDate: release,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created movie %s (%s)\n", created.Title, created.ID)
			return nil
		},
	}
}

func addTheatreCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-theatre",
		Short: "Create a theatre",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := promptText("Name", false)
			if err != nil {
				return err
			}
			location, err := promptText("Location", false)
			if err != nil {
				return err
			}
			rows, err := promptInt("Rows")
			if err != nil {
				return err
			}
			perRow, err := promptInt("Seats per row")
			if err != nil {
				return err
			}

			created, err := (*a).theatres.CreateOne(context.Background(), model.Theatre{
				Name:        name,
				Location:    location,
				Rows:        rows,
				SeatsPerRow: perRow,
				TotalSeats:  rows * perRow,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created theatre %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
}

func addShowtimeCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-showtime",
		Short: "Schedule a showtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := promptText("Movie ID", false)
			if err != nil {
				return err
			}
			theatreID, err := promptText("Theatre ID", false)
			if err != nil {
				return err
			}
			when, err := promptText("Show date (RFC3339, e.g. 2026-09-01T17:00:00Z)", false)
			if err != nil {
				return err
			}
			showDate, err := time.Parse(time.RFC3339, when)
			if err != nil {
				return fmt.Errorf("parse show date: %w", err)
			}
			price, err := promptFloat("Ticket price")
			if err != nil {
				return err
			}

			created, err := (*a).showtimes.CreateOne(context.Background(), model.Showtime{
				MovieID:   movieID,
				TheatreID: theatreID,
				ShowDate:  showDate,
				Price:     price,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created showtime %s with %d seats\n", created.ID, created.AvailableSeats)
			return nil
		},
	}
}

func promptInt(label string) (int, error) {
	s, err := promptText(label, false)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return n, nil
}

func promptFloat(label string) (float64, error) {
	s, err := promptText(label, false)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return f, nil
}

func promptDate(label string) (time.Time, error) {
	s, err := promptText(label, false)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must look like 2026-03-15", label)
	}
	return d, nil
}
