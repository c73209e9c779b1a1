package seatmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PadsMissingColumns(t *testing.T) {
	m, err := Build([]string{"A1", "A3"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, m.Rows)
	assert.Equal(t, 3, m.MaxColumn)
	assert.Equal(t, []Seat{
		{ID: "A1", Row: "A", Column: 1, Available: true},
		{ID: "A2", Row: "A", Column: 2, Available: false},
		{ID: "A3", Row: "A", Column: 3, Available: true},
	}, m.Seats)
}

func TestBuild_EmptyInput(t *testing.T) {
	m, err := Build(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Seats)
	assert.Empty(t, m.Rows)
	assert.Equal(t, 0, m.MaxColumn)
	assert.Empty(t, Selected(m))
	assert.Empty(t, ByRow(m))
}

func TestBuild_SizeIsRowsTimesMaxColumn(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		rows  int
		max   int
	}{
		{name: "single seat", codes: []string{"B2"}, rows: 1, max: 2},
		{name: "uneven rows", codes: []string{"A1", "A2", "B5", "C3"}, rows: 3, max: 5},
		{name: "no row interpolation", codes: []string{"B1", "D1"}, rows: 2, max: 1},
		{name: "duplicates collapse", codes: []string{"A1", "A1", "A01"}, rows: 1, max: 1},
		{name: "multi letter rows", codes: []string{"AA10", "B1"}, rows: 2, max: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(tt.codes)
			require.NoError(t, err)
			assert.Len(t, m.Rows, tt.rows)
			assert.Equal(t, tt.max, m.MaxColumn)
			assert.Len(t, m.Seats, tt.rows*tt.max)
		})
	}
}

func TestBuild_AvailabilityMatchesInput(t *testing.T) {
	input := []string{"C4", "A2", "C1", "A1"}
	m, err := Build(input)
	require.NoError(t, err)

	listed := map[string]bool{"C4": true, "A2": true, "C1": true, "A1": true}
	for _, s := range m.Seats {
		assert.Equal(t, listed[s.ID], s.Available, "seat %s", s.ID)
		assert.False(t, s.Selected)
	}
}

func TestBuild_OrderIndependent(t *testing.T) {
	a, err := Build([]string{"B2", "A1", "C3", "A3"})
	require.NoError(t, err)
	b, err := Build([]string{"A3", "C3", "A1", "B2", "A1"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_RowsSortedLexicographically(t *testing.T) {
	m, err := Build([]string{"D1", "B1", "AA1", "C1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "B", "C", "D"}, m.Rows)
}

func TestBuild_SkipsMalformedCodes(t *testing.T) {
	m, err := Build([]string{"A1", "A", "12", "Bx", "C0", "A2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedCode))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "A", pe.Code)

	assert.Equal(t, []string{"A"}, m.Rows)
	assert.Equal(t, 2, m.MaxColumn)
	assert.Len(t, m.Seats, 2)
}

func TestBuild_HugeColumnsAreSkipped(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "int64 max", code: "B9223372036854775807"},
		{name: "over limit", code: "A100000000"},
		{name: "just over limit", code: "C1001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Map
			var err error
			require.NotPanics(t, func() { m, err = Build([]string{"A1", tt.code, "A2"}) })
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCode)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.code, pe.Code)

			assert.Equal(t, []string{"A"}, m.Rows)
			assert.Equal(t, 2, m.MaxColumn)
			assert.Len(t, m.Seats, 2)
		})
	}
}

func TestBuild_AllMalformed(t *testing.T) {
	m, err := Build([]string{"x", "?"})
	assert.Error(t, err)
	assert.Empty(t, m.Seats)
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		code    string
		row     string
		col     int
		wantErr bool
	}{
		{code: "C4", row: "C", col: 4},
		{code: " A12 ", row: "A", col: 12},
		{code: "AB3", row: "AB", col: 3},
		{code: "A07", row: "A", col: 7},
		{code: "A", wantErr: true},
		{code: "7", wantErr: true},
		{code: "", wantErr: true},
		{code: "A1B", wantErr: true},
		{code: "A0", wantErr: true},
		{code: "A1000", row: "A", col: 1000},
		{code: "A1001", wantErr: true},
		{code: "A100000000", wantErr: true},
		{code: "B9223372036854775807", wantErr: true},
		{code: "B99999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			row, col, err := ParseCode(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestToggle_SelectsAndDeselects(t *testing.T) {
	m, err := Build([]string{"A1", "A2", "B1"})
	require.NoError(t, err)

	once := Toggle(m, "A1")
	s, ok := Lookup(once, "A1")
	require.True(t, ok)
	assert.True(t, s.Selected)

	orig, _ := Lookup(m, "A1")
	assert.False(t, orig.Selected, "input map must not change")

	twice := Toggle(once, "A1")
	assert.Equal(t, m, twice)
}

func TestToggle_IgnoresUnavailableAndUnknown(t *testing.T) {
	m, err := Build([]string{"A1", "A3"})
	require.NoError(t, err)

	assert.Equal(t, m, Toggle(m, "A2"))
	assert.Equal(t, m, Toggle(m, "Z1"))
	assert.Equal(t, m, Toggle(m, "A9"))
	assert.Equal(t, m, Toggle(m, "garbage"))
}

func TestToggle_NeverSelectsUnavailable(t *testing.T) {
	m, err := Build([]string{"A1", "A4", "B2"})
	require.NoError(t, err)
	for _, s := range m.Seats {
		m = Toggle(m, s.ID)
	}
	for _, s := range m.Seats {
		assert.Equal(t, s.Available, s.Selected, "seat %s", s.ID)
	}
}

func TestSelected_RowMajorOrder(t *testing.T) {
	m, err := Build([]string{"A1", "A2", "B1"})
	require.NoError(t, err)

	m = Toggle(m, "B1")
	m = Toggle(m, "A1")
	assert.Equal(t, []string{"A1", "B1"}, Selected(m))
}

func TestMarkReserved(t *testing.T) {
	m, err := Build([]string{"A1", "A2"})
	require.NoError(t, err)
	m = Toggle(m, "A1")

	after := MarkReserved(m, Selected(m))
	s, _ := Lookup(after, "A1")
	assert.False(t, s.Available)
	assert.False(t, s.Selected)
	assert.Empty(t, Selected(after))

	c := CountSeats(after)
	assert.Equal(t, Counts{Available: 1, Selected: 0, Unavailable: 1}, c)
}

func TestByRow(t *testing.T) {
	m, err := Build([]string{"B2", "A1"})
	require.NoError(t, err)

	rows := ByRow(m)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Label)
	assert.Equal(t, []string{"A1", "A2"}, []string{rows[0].Seats[0].ID, rows[0].Seats[1].ID})
	assert.Equal(t, "B", rows[1].Label)
	assert.True(t, rows[1].Seats[1].Available)
	assert.False(t, rows[1].Seats[0].Available)
}

func TestCountSeats(t *testing.T) {
	m, err := Build([]string{"A1", "A3", "B3"})
	require.NoError(t, err)
	m = Toggle(m, "A3")
	assert.Equal(t, Counts{Available: 3, Selected: 1, Unavailable: 3}, CountSeats(m))
}
