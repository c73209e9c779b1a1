package view

import (
	"sort"

	"github.com/iliyamo/showtime-booking/internal/model"
)

// Dashboard is the admin revenue overview.
type Dashboard struct {
	TotalRevenue       int            `json:"total_revenue"`
	TotalSeatsReserved int            `json:"total_seats_reserved"`
	SeatPrice          int            `json:"seat_price"`
	MovieCount         int            `json:"movie_count"`
	Movies             []MovieRevenue `json:"movies"`
}

type MovieRevenue struct {
	Title   string `json:"title"`
	Revenue int    `json:"revenue"`
	Seats   int    `json:"seats"`
}

// BuildDashboard derives per-movie seat counts from revenue at a flat seat
// price. Rows are ordered by revenue, highest first, then by title.
func BuildDashboard(rev model.Revenue, seatPrice int) Dashboard {
	if seatPrice < 1 {
		seatPrice = 1
	}
	rows := make([]MovieRevenue, 0, len(rev.Revenue))
	for title, amount := range rev.Revenue {
		rows = append(rows, MovieRevenue{Title: title, Revenue: amount, Seats: amount / seatPrice})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].Title < rows[j].Title
	})
	return Dashboard{
		TotalRevenue:       rev.TotalRevenue,
		TotalSeatsReserved: rev.TotalSeatsReserved,
		SeatPrice:          seatPrice,
		MovieCount:         len(rows),
		Movies:             rows,
	}
}
