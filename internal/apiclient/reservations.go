package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iliyamo/showtime-booking/internal/model"
)

// Reserve books the given seats for a showtime.
func (c *Client) Reserve(ctx context.Context, sess *model.Session, req model.ReservationRequest) (model.ReservationResult, error) {
	var out model.ReservationResult
	err := c.do(ctx, sess, "reserve", http.MethodPost, "/reserve/add", req, &out)
	return out, err
}

func (c *Client) CancelReservation(ctx context.Context, sess *model.Session, id uint64) error {
	return c.do(ctx, sess, "cancel reservation", http.MethodDelete, "/reserve/delete/"+strconv.FormatUint(id, 10), nil, nil)
}

// MyReservations lists the reservations of the session's user.
func (c *Client) MyReservations(ctx context.Context, sess *model.Session) ([]model.Reservation, error) {
	out := []model.Reservation{}
	if err := c.do(ctx, sess, "my reservations", http.MethodGet, "/reserve", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllReservations(ctx context.Context, sess *model.Session) ([]model.Reservation, error) {
	out := []model.Reservation{}
	if err := c.do(ctx, sess, "all reservations", http.MethodGet, "/reserve/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReservationsPerMovie(ctx context.Context, sess *model.Session, movieID uint64) ([]model.MovieReservationCount, error) {
	out := []model.MovieReservationCount{}
	path := "/reserve/movie/" + strconv.FormatUint(movieID, 10)
	if err := c.do(ctx, sess, "reservations per movie", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Revenue fetches the revenue aggregate shown on the admin dashboard.
func (c *Client) Revenue(ctx context.Context, sess *model.Session) (model.Revenue, error) {
	var out model.Revenue
	if err := c.do(ctx, sess, "revenue", http.MethodGet, "/revenue", nil, &out); err != nil {
		return model.Revenue{}, err
	}
	if out.Revenue == nil {
		out.Revenue = map[string]int{}
	}
	return out, nil
}
