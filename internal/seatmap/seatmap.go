// Package seatmap turns the sparse list of bookable seat codes returned for a
// showtime into a dense, rectangular seat grid and tracks which seats the
// user has selected for a reservation request.
//
// Every row letter seen in the input gets one seat for each column from 1 to
// the largest column seen anywhere in the input. Seats that were not listed
// are synthesized as unavailable. Maps are values: Toggle and MarkReserved
// return a new Map and never modify their argument.
package seatmap

import (
	"errors"
	"sort"
)

// Seat is one position in the grid.
type Seat struct {
	ID        string `json:"id"`
	Row       string `json:"row"`
	Column    int    `json:"column"`
	Available bool   `json:"is_available"`
	Selected  bool   `json:"is_selected"`
}

// Map is the seat grid for one showtime. Seats are stored row-major: rows in
// lexicographic order, columns ascending from 1 to MaxColumn.
type Map struct {
	Rows      []string `json:"rows"`
	MaxColumn int      `json:"max_column"`
	Seats     []Seat   `json:"seats"`
}

// Row groups the seats of a single row for rendering.
type Row struct {
	Label string `json:"label"`
	Seats []Seat `json:"seats"`
}

// Counts summarises a map.
type Counts struct {
	Available   int `json:"available"`
	Selected    int `json:"selected"`
	Unavailable int `json:"unavailable"`
}

type position struct {
	row string
	col int
}

// Build derives the full grid from the available seat codes. Duplicate codes
// collapse into one seat and "A01" is the same seat as "A1".
//
// Malformed codes are skipped. The returned Map is always usable; the error is
// nil unless codes were skipped, in which case it joins one *ParseError per
// skipped code.
func Build(codes []string) (Map, error) {
	available := make(map[position]struct{}, len(codes))
	rowSet := make(map[string]struct{})
	maxCol := 0
	var errs []error

	for _, code := range codes {
		row, col, err := ParseCode(code)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		available[position{row, col}] = struct{}{}
		rowSet[row] = struct{}{}
		if col > maxCol {
			maxCol = col
		}
	}

	if len(rowSet) == 0 {
		return Map{Rows: []string{}, Seats: []Seat{}}, errors.Join(errs...)
	}

	rows := make([]string, 0, len(rowSet))
	for r := range rowSet {
		rows = append(rows, r)
	}
	sort.Strings(rows)

	seats := make([]Seat, 0, len(rows)*maxCol)
	for _, r := range rows {
		for c := 1; c <= maxCol; c++ {
			_, ok := available[position{r, c}]
			seats = append(seats, Seat{
				ID:        FormatCode(r, c),
				Row:       r,
				Column:    c,
				Available: ok,
			})
		}
	}
	return Map{Rows: rows, MaxColumn: maxCol, Seats: seats}, errors.Join(errs...)
}

// Toggle flips the selection of seat id. Unknown and unavailable seats leave
// the map unchanged.
func Toggle(m Map, id string) Map {
	i := m.index(id)
	if i < 0 || !m.Seats[i].Available {
		return m
	}
	out := m.clone()
	out.Seats[i].Selected = !out.Seats[i].Selected
	return out
}

// Selected returns the ids of the selected seats in row-major order.
func Selected(m Map) []string {
	ids := []string{}
	for _, s := range m.Seats {
		if s.Selected {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// MarkReserved makes the given seats unavailable and clears their selection.
func MarkReserved(m Map, ids []string) Map {
	out := m.clone()
	for _, id := range ids {
		if i := out.index(id); i >= 0 {
			out.Seats[i].Available = false
			out.Seats[i].Selected = false
		}
	}
	return out
}

// Lookup finds a seat by id. Ids are canonicalised the same way Build does.
func Lookup(m Map, id string) (Seat, bool) {
	i := m.index(id)
	if i < 0 {
		return Seat{}, false
	}
	return m.Seats[i], true
}

// ByRow splits the map into one Row per row label, in display order.
func ByRow(m Map) []Row {
	out := make([]Row, 0, len(m.Rows))
	for i, label := range m.Rows {
		lo, hi := i*m.MaxColumn, (i+1)*m.MaxColumn
		if hi > len(m.Seats) {
			break
		}
		seats := make([]Seat, hi-lo)
		copy(seats, m.Seats[lo:hi])
		out = append(out, Row{Label: label, Seats: seats})
	}
	return out
}

// CountSeats tallies available, selected and unavailable seats. Selected
// seats are also counted as available.
func CountSeats(m Map) Counts {
	var c Counts
	for _, s := range m.Seats {
		switch {
		case !s.Available:
			c.Unavailable++
		case s.Selected:
			c.Selected++
			c.Available++
		default:
			c.Available++
		}
	}
	return c
}

// index locates a seat by position arithmetic on the row-major layout.
func (m Map) index(id string) int {
	row, col, err := ParseCode(id)
	if err != nil || col > m.MaxColumn {
		return -1
	}
	r := sort.SearchStrings(m.Rows, row)
	if r >= len(m.Rows) || m.Rows[r] != row {
		return -1
	}
	i := r*m.MaxColumn + col - 1
	if i >= len(m.Seats) {
		return -1
	}
	return i
}

func (m Map) clone() Map {
	seats := make([]Seat, len(m.Seats))
	copy(seats, m.Seats)
	rows := make([]string, len(m.Rows))
	copy(rows, m.Rows)
	return Map{Rows: rows, MaxColumn: m.MaxColumn, Seats: seats}
}
