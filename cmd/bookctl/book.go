package main

import (
	"context"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/iliyamo/movie-booking/internal/booking"
	"github.com/iliyamo/movie-booking/internal/model"
)

const doneChoice = "Done selecting"

// bookCmd walks the whole flow interactively: movie, showtime, seats,
// confirmation.
func bookCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "book",
		Short: "Book tickets interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(*a).session.IsAuthenticated() {
				return fmt.Errorf("log in first (bookctl login)")
			}
			ctx := context.Background()
			wf := (*a).workflow

			if err := (*a).movies.FetchAll(ctx); err != nil {
				return err
			}
			movie, err := pickMovie((*a).movies.Movies)
			if err != nil {
				return err
			}
			if err := wf.SelectMovie(ctx, movie); err != nil {
				return err
			}
			if len(wf.Showtimes) == 0 {
				return fmt.Errorf("no showtimes for %s", movie.Title)
			}

			showtime, err := pickShowtime(wf.Showtimes)
			if err != nil {
				return err
			}
			if err := wf.SelectShowtime(ctx, showtime); err != nil {
				return err
			}

			for {
				choice, err := pickSeat(wf)
				if err != nil {
					return err
				}
				if choice == nil {
					break
				}
				wf.ToggleSeat(*choice)
				fmt.Printf("Selected: %s (total %.2f)\n", seatList(wf.Selected), wf.Total())
			}

			if len(wf.Selected) == 0 {
				fmt.Println("Nothing selected, nothing booked.")
				return nil
			}

			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("Book %s for %.2f", seatList(wf.Selected), wf.Total()),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				fmt.Println("Aborted.")
				return nil
			}

			total, err := wf.BookTickets(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Booked! Total charged: %.2f\n", total)
			return nil
		},
	}
}

func pickMovie(movies []model.Movie) (model.Movie, error) {
	items := make([]string, len(movies))
	for i, m := range movies {
		items[i] = fmt.Sprintf("%s (%s, %.1f)", m.Title, m.Genre, m.Rating)
	}
	sel := promptui.Select{Label: "Select movie", Items: items, Size: 10}
	i, _, err := sel.Run()
	if err != nil {
		return model.Movie{}, err
	}
	return movies[i], nil
}

func pickShowtime(showtimes []model.Showtime) (model.Showtime, error) {
	items := make([]string, len(showtimes))
	for i, s := range showtimes {
		items[i] = fmt.Sprintf("%s | %.2f | %d seats left", s.ShowDate.Format(time.RFC822), s.Price, s.AvailableSeats)
	}
	sel := promptui.Select{Label: "Select showtime", Items: items, Size: 10}
	i, _, err := sel.Run()
	if err != nil {
		return model.Showtime{}, err
	}
	return showtimes[i], nil
}

// pickSeat offers the bookable seats plus a done sentinel; a nil seat
// means the user finished selecting.  Already-selected seats stay in
// the list so picking one again deselects it.
func pickSeat(wf *booking.Workflow) (*model.Seat, error) {
	items := []string{doneChoice}
	seats := []model.Seat{}
	for _, s := range wf.Seats {
		if s.Status == model.SeatBooked {
			continue
		}
		label := s.Label()
		if wf.IsSelected(s) {
			label += " (selected)"
		}
		items = append(items, label)
		seats = append(seats, s)
	}

	sel := promptui.Select{Label: "Select seat", Items: items, Size: 12}
	i, _, err := sel.Run()
	if err != nil {
		return nil, err
	}
	if i == 0 {
		return nil, nil
	}
	seat := seats[i-1]
	return &seat, nil
}
