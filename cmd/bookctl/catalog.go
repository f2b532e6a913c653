package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/iliyamo/movie-booking/internal/model"
)

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	return t
}

func moviesCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "movies",
		Short: "List movies now showing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).movies.FetchAll(context.Background()); err != nil {
				return err
			}
			t := newTable(table.Row{"ID", "Title", "Genre", "Rating", "Duration", "Language"})
			for _, m := range (*a).movies.Movies {
				t.AppendRow(table.Row{m.ID, m.Title, m.Genre, m.Rating, fmt.Sprintf("%d min", m.Duration), m.Language})
			}
			t.Render()
			return nil
		},
	}
}

func theatresCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "theatres",
		Short: "List theatres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).theatres.FetchAll(context.Background()); err != nil {
				return err
			}
			t := newTable(table.Row{"ID", "Name", "Location", "Seats", "Layout"})
			for _, th := range (*a).theatres.Theatres {
				t.AppendRow(table.Row{th.ID, th.Name, th.Location, th.TotalSeats, fmt.Sprintf("%d x %d", th.Rows, th.SeatsPerRow)})
			}
			t.Render()
			return nil
		},
	}
}

func showtimesCmd(a **app) *cobra.Command {
	var movieID, theatreID string
	cmd := &cobra.Command{
		Use:   "showtimes",
		Short: "List showtimes, optionally filtered by movie or theatre",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).showtimes.FetchAll(context.Background(), movieID, theatreID); err != nil {
				return err
			}
			t := newTable(table.Row{"ID", "Movie", "Theatre", "When", "Price", "Seats left"})
			for _, s := range (*a).showtimes.Showtimes {
				t.AppendRow(table.Row{s.ID, s.MovieID, s.TheatreID, s.ShowDate.Format(time.RFC822), s.Price, s.AvailableSeats})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&movieID, "movie", "", "filter by movie id")
	cmd.Flags().StringVar(&theatreID, "theatre", "", "filter by theatre id")
	return cmd
}

func bookingsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).workflow.FetchBookings(context.Background()); err != nil {
				return err
			}
			t := newTable(table.Row{"ID", "Showtime", "Seats", "Total", "Status", "Booked at"})
			for _, b := range (*a).workflow.Bookings {
				t.AppendRow(table.Row{b.ID, b.ShowtimeID, seatList(b.Seats), b.TotalAmount, b.Status, b.BookingDate.Format(time.RFC822)})
			}
			t.Render()
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking and free its seats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).workflow.CancelBooking(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Booking cancelled.")
			return nil
		},
	})
	return cmd
}

func seatList(seats []model.Seat) string {
	out := ""
	for i, s := range seats {
		if i > 0 {
			out += ", "
		}
		out += s.Label()
	}
	return out
}
