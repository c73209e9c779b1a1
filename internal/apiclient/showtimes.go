package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/iliyamo/showtime-booking/internal/model"
)

// ListShowtimes returns every showtime, keeping the first occurrence of each id.
func (c *Client) ListShowtimes(ctx context.Context, sess *model.Session) ([]model.Showtime, error) {
	var all []model.Showtime
	if err := c.do(ctx, sess, "list showtimes", http.MethodGet, "/showtimes", nil, &all); err != nil {
		return nil, err
	}
	seen := make(map[uint64]bool, len(all))
	out := make([]model.Showtime, 0, len(all))
	for _, st := range all {
		if seen[st.ID] {
			continue
		}
		seen[st.ID] = true
		out = append(out, st)
	}
	return out, nil
}

// AddShowtime creates a showtime. The API does not echo the new record, so the
// returned Showtime carries ID 0 unless the response includes one.
func (c *Client) AddShowtime(ctx context.Context, sess *model.Session, in model.ShowtimeInput) (model.Showtime, error) {
	var out model.Showtime
	if err := c.do(ctx, sess, "add showtime", http.MethodPost, "/showtimes/add", in, &out); err != nil {
		return model.Showtime{}, err
	}
	if out.MovieID == 0 {
		out = model.Showtime{ID: out.ID, MovieID: in.MovieID, StartTime: in.StartTime, Capacity: in.Capacity}
	}
	return out, nil
}

func (c *Client) UpdateShowtime(ctx context.Context, sess *model.Session, id uint64, in model.ShowtimeInput) error {
	return c.do(ctx, sess, "update showtime", http.MethodPut, "/showtimes/update/"+strconv.FormatUint(id, 10), in, nil)
}

func (c *Client) DeleteShowtime(ctx context.Context, sess *model.Session, id uint64) error {
	return c.do(ctx, sess, "delete showtime", http.MethodDelete, "/showtimes/delete/"+strconv.FormatUint(id, 10), nil, nil)
}

// AvailableSeats returns the bookable seat codes of a showtime. Both a bare
// JSON array and {"available_seats": [...]} are accepted.
func (c *Client) AvailableSeats(ctx context.Context, sess *model.Session, showtimeID uint64) ([]string, error) {
	var raw json.RawMessage
	op := "available seats"
	if err := c.do(ctx, sess, op, http.MethodGet, "/showtimes/seats/"+strconv.FormatUint(showtimeID, 10), nil, &raw); err != nil {
		return nil, err
	}
	seats := []string{}
	if len(raw) == 0 || string(raw) == "null" {
		return seats, nil
	}
	if err := json.Unmarshal(raw, &seats); err == nil {
		return seats, nil
	}
	var wrapped struct {
		AvailableSeats []string `json:"available_seats"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, &APIError{Op: op, StatusCode: http.StatusBadGateway, Message: "malformed response", Err: err}
	}
	if wrapped.AvailableSeats == nil {
		return []string{}, nil
	}
	return wrapped.AvailableSeats, nil
}
