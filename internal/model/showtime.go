package model

import "time"

// Showtime is a scheduled screening of a movie.
//
// Fields:
//  ID        – showtime identifier.
//  MovieID   – movie being screened.
//  StartTime – when the screening begins.
//  Capacity  – total number of seats.
//  Reserved  – seats already reserved.
type Showtime struct {
	ID        uint64    `json:"id"`
	MovieID   uint64    `json:"movie_id"`
	StartTime time.Time `json:"start_time"`
	Capacity  uint32    `json:"capacity"`
	Reserved  uint32    `json:"reserved"`
}

// ShowtimeInput is the body accepted by the add and update showtime endpoints.
type ShowtimeInput struct {
	MovieID   uint64    `json:"movie_id"`
	StartTime time.Time `json:"start_time"`
	Capacity  uint32    `json:"capacity"`
}
