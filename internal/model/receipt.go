package model

import "time"

// Receipt is the local record of a reservation submitted through this
// service. It mirrors the `reservation_receipts` table.
//
// Fields:
//  ID            – receipts.id
//  ReservationID – id assigned by the booking API.
//  Username      – who reserved.
//  MovieID       – movie reserved.
//  ShowtimeID    – showtime reserved.
//  Seats         – seat codes, row-major.
//  SubmittedAt   – when the reservation was accepted.
type Receipt struct {
	ID            uint64    `json:"id"`
	ReservationID uint64    `json:"reservation_id"`
	Username      string    `json:"username"`
	MovieID       uint64    `json:"movie_id"`
	ShowtimeID    uint64    `json:"showtime_id"`
	Seats         []string  `json:"seats"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
