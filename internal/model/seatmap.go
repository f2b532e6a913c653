package model

// SeatMap is the response for a showtime's seat layout.  It bundles
// the theatre geometry with the derived per-seat availability so the
// client can render the full map from a single request.
type SeatMap struct {
	ShowtimeID string  `json:"showtimeId"`
	Theatre    Theatre `json:"theatre"`
	Seats      []Seat  `json:"seats"`
}

// RowLabel converts a zero-based row index to an alphabetical label:
// 0 → A, 25 → Z, 26 → AA.
func RowLabel(i int) string {
	if i < 0 {
		return ""
	}
	var res []byte
	for {
		res = append(res, byte('A'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 {
		res[j], res[k] = res[k], res[j]
	}
	return string(res)
}

// GenerateSeatMap derives the seat layout for one showtime from the
// theatre geometry.  Every seat starts available; seats claimed by a
// confirmed booking are marked booked.  Seats appear row by row, each
// row numbered from 1, so the order is stable for rendering.
func GenerateSeatMap(theatre Theatre, booked []Seat) []Seat {
	seats := make([]Seat, 0, theatre.Rows*theatre.SeatsPerRow)
	for i := 0; i < theatre.Rows; i++ {
		row := RowLabel(i)
		for n := 1; n <= theatre.SeatsPerRow; n++ {
			status := SeatAvailable
			for _, b := range booked {
				if b.Row == row && b.Number == n {
					status = SeatBooked
					break
				}
			}
			seats = append(seats, Seat{Row: row, Number: n, Status: status})
		}
	}
	return seats
}
