package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/showtime-booking/internal/model"
)

var testSession = &model.Session{Username: "ana", Role: "user", Token: "tok-123"}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 2*time.Second)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, credentials{"ana", "secret"}, body)
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	})

	tok, err := c.Login(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "ana", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestListMovies_SendsBearerAndRequestID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`[{"id":1,"title":"Alien","genre":"Sci-Fi","poster_image":"p.png"}]`))
	})

	ctx := WithRequestID(context.Background(), "req-1")
	movies, err := c.ListMovies(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, model.Movie{ID: 1, Title: "Alien", Genre: "Sci-Fi", PosterImage: "p.png"}, movies[0])
}

func TestListShowtimes_Deduplicates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"movie_id":7,"start_time":"2026-10-18T18:00:00Z","capacity":50},
			{"id":2,"movie_id":7,"start_time":"2026-10-18T21:00:00Z","capacity":50},
			{"id":1,"movie_id":7,"start_time":"2026-10-18T18:00:00Z","capacity":50}
		]`))
	})

	sts, err := c.ListShowtimes(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, sts, 2)
	assert.Equal(t, uint64(1), sts[0].ID)
	assert.Equal(t, uint64(2), sts[1].ID)
}

func TestAvailableSeats_Shapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "array", body: `["A1","A2"]`, want: []string{"A1", "A2"}},
		{name: "wrapped", body: `{"available_seats":["C4"]}`, want: []string{"C4"}},
		{name: "null", body: `null`, want: []string{}},
		{name: "empty body", body: ``, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/showtimes/seats/42", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})
			seats, err := c.AvailableSeats(context.Background(), testSession, 42)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seats)
		})
	}
}

func TestReserve(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reserve/add", r.URL.Path)
		var req model.ReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.ReservationRequest{MovieID: 3, ShowtimeID: 9, Seats: []string{"A1", "B1"}}, req)
		_, _ = w.Write([]byte(`{"message":"Reservation succesfull","reservation_id":77}`))
	})

	res, err := c.Reserve(context.Background(), testSession, model.ReservationRequest{MovieID: 3, ShowtimeID: 9, Seats: []string{"A1", "B1"}})
	require.NoError(t, err)
	assert.Equal(t, uint64(77), res.ReservationID)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		body   string
		kind   error
		msg    string
	}{
		{status: http.StatusBadRequest, body: `{"error":"seats taken"}`, kind: ErrBadRequest, msg: "seats taken"},
		{status: http.StatusForbidden, body: `{"message":"admins only"}`, kind: ErrForbidden, msg: "admins only"},
		{status: http.StatusNotFound, body: "no such showtime\n", kind: ErrNotFound, msg: "no such showtime"},
		{status: http.StatusConflict, body: ``, kind: ErrConflict},
		{status: http.StatusInternalServerError, body: "boom", kind: ErrUpstream, msg: "boom"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			err := c.DeleteMovie(context.Background(), testSession, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.msg, apiErr.Message)
		})
	}
}

func TestTransportFailureIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := New(srv.URL, time.Second)
	srv.Close()

	_, err := c.Revenue(context.Background(), testSession)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAddShowtime_FillsMissingFields(t *testing.T) {
	start := time.Date(2026, 10, 20, 19, 30, 0, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Showtime added successfully"}`))
	})

	st, err := c.AddShowtime(context.Background(), testSession, model.ShowtimeInput{MovieID: 4, StartTime: start, Capacity: 80})
	require.NoError(t, err)
	assert.Equal(t, model.Showtime{MovieID: 4, StartTime: start, Capacity: 80}, st)
}

func TestRevenue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"revenue":{"Alien":25,"Heat":10},"total_revenue":35,"total_seats_reserved":7}`))
	})

	rev, err := c.Revenue(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, 35, rev.TotalRevenue)
	assert.Equal(t, 7, rev.TotalSeatsReserved)
	assert.Equal(t, map[string]int{"Alien": 25, "Heat": 10}, rev.Revenue)
}
