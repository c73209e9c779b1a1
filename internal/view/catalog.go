// Package view shapes booking API data into the view models the browser
// renders: movie cards, the revenue dashboard, the seat picker, and the
// validated contents of the admin forms.
package view

import (
	"sort"
	"time"

	"github.com/iliyamo/showtime-booking/internal/model"
)

const (
	dayLayout  = "Monday, January 2"
	timeLayout = "15:04"
)

// MovieCard is one movie with its showtimes grouped by calendar day.
type MovieCard struct {
	model.Movie
	Days []ShowDay `json:"days"`
}

// ShowDay holds the showtimes of one day in start order.
type ShowDay struct {
	Date      string     `json:"date"`
	Showtimes []ShowSlot `json:"showtimes"`
}

type ShowSlot struct {
	ID        uint64    `json:"id"`
	Time      string    `json:"time"`
	StartTime time.Time `json:"start_time"`
	Capacity  uint32    `json:"capacity"`
	Reserved  uint32    `json:"reserved"`
	Remaining uint32    `json:"remaining"`
}

// MovieCards joins movies with their showtimes. Movies keep the API's order;
// days are chronological and each showtime id appears once.
func MovieCards(movies []model.Movie, showtimes []model.Showtime, loc *time.Location) []MovieCard {
	if loc == nil {
		loc = time.UTC
	}
	byMovie := make(map[uint64][]model.Showtime)
	seen := make(map[uint64]bool, len(showtimes))
	for _, st := range showtimes {
		if seen[st.ID] {
			continue
		}
		seen[st.ID] = true
		byMovie[st.MovieID] = append(byMovie[st.MovieID], st)
	}

	cards := make([]MovieCard, 0, len(movies))
	for _, m := range movies {
		cards = append(cards, MovieCard{Movie: m, Days: groupByDay(byMovie[m.ID], loc)})
	}
	return cards
}

func groupByDay(sts []model.Showtime, loc *time.Location) []ShowDay {
	sort.SliceStable(sts, func(i, j int) bool { return sts[i].StartTime.Before(sts[j].StartTime) })

	days := []ShowDay{}
	for _, st := range sts {
		local := st.StartTime.In(loc)
		label := local.Format(dayLayout)
		if n := len(days); n == 0 || days[n-1].Date != label {
			days = append(days, ShowDay{Date: label})
		}
		remaining := uint32(0)
		if st.Capacity > st.Reserved {
			remaining = st.Capacity - st.Reserved
		}
		last := &days[len(days)-1]
		last.Showtimes = append(last.Showtimes, ShowSlot{
			ID:        st.ID,
			Time:      local.Format(timeLayout),
			StartTime: st.StartTime,
			Capacity:  st.Capacity,
			Reserved:  st.Reserved,
			Remaining: remaining,
		})
	}
	return days
}
