package view

import "github.com/iliyamo/showtime-booking/internal/seatmap"

// SeatPicker is the seat-selection view of one showtime.
type SeatPicker struct {
	MovieID    uint64         `json:"movie_id"`
	ShowtimeID uint64         `json:"showtime_id"`
	MaxColumn  int            `json:"max_column"`
	Rows       []seatmap.Row  `json:"rows"`
	Selected   []string       `json:"selected"`
	Counts     seatmap.Counts `json:"counts"`
	CanReserve bool           `json:"can_reserve"`
}

func NewSeatPicker(movieID, showtimeID uint64, m seatmap.Map) SeatPicker {
	selected := seatmap.Selected(m)
	return SeatPicker{
		MovieID:    movieID,
		ShowtimeID: showtimeID,
		MaxColumn:  m.MaxColumn,
		Rows:       seatmap.ByRow(m),
		Selected:   selected,
		Counts:     seatmap.CountSeats(m),
		CanReserve: len(selected) > 0,
	}
}
