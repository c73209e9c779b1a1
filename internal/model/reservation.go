package model

import "time"

// Reservation is a booking held by the booking API.
type Reservation struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	MovieID    uint64    `json:"movie_id"`
	ShowtimeID uint64    `json:"showtime_id"`
	Seats      []string  `json:"seats"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReservationRequest is the payload sent to reserve seats for a showtime.
type ReservationRequest struct {
	MovieID    uint64   `json:"movie_id"`
	ShowtimeID uint64   `json:"showtime_id"`
	Seats      []string `json:"seats"`
}

// ReservationResult is the API's answer to a successful reservation.
type ReservationResult struct {
	ReservationID uint64 `json:"reservation_id"`
	Message       string `json:"message"`
}

// MovieReservationCount reports how many seats were reserved for a movie.
type MovieReservationCount struct {
	MovieID    uint64 `json:"movie_id"`
	Title      string `json:"title"`
	TotalSeats int    `json:"total_seats"`
}
