// Package queue carries reservation events over RabbitMQ: the payload shared
// by publisher and consumer, and the consumer that records receipts.
package queue

import "time"

// ReservationQueue is the durable queue reservation events are routed to.
const ReservationQueue = "reservation.submitted"

// ReservationSubmittedEvent is published after the booking API accepted a
// reservation made through the seat picker. EventID is unique per publish;
// ReservationID identifies the reservation across redeliveries.
type ReservationSubmittedEvent struct {
	EventID       string    `json:"event_id"`
	ReservationID uint64    `json:"reservation_id"`
	Username      string    `json:"username"`
	MovieID       uint64    `json:"movie_id"`
	ShowtimeID    uint64    `json:"showtime_id"`
	Seats         []string  `json:"seats"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
