// Package service holds the seat selection workflow that sits between the
// HTTP handlers, the booking API and the Redis draft store, plus the
// RabbitMQ publisher it reports reservations to.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/showtime-booking/internal/apiclient"
	"github.com/iliyamo/showtime-booking/internal/model"
	"github.com/iliyamo/showtime-booking/internal/queue"
	"github.com/iliyamo/showtime-booking/internal/repository"
	"github.com/iliyamo/showtime-booking/internal/seatmap"
)

// ErrNoSeatsSelected is returned by Submit when the draft has no selection.
var ErrNoSeatsSelected = errors.New("no seats selected")

// SeatAPI is the part of the booking API the workflow calls.
type SeatAPI interface {
	AvailableSeats(ctx context.Context, sess *model.Session, showtimeID uint64) ([]string, error)
	Reserve(ctx context.Context, sess *model.Session, req model.ReservationRequest) (model.ReservationResult, error)
}

// DraftStore keeps seat maps between requests.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, d repository.Draft) error
	Get(ctx context.Context, sessionID string, showtimeID uint64) (repository.Draft, error)
	Delete(ctx context.Context, sessionID string, showtimeID uint64) error
}

type EventPublisher interface {
	PublishReservation(ctx context.Context, ev queue.ReservationSubmittedEvent) error
}

// ReservationObserver counts reservation outcomes ("ok", "rejected", "failed").
type ReservationObserver interface {
	ObserveReservation(outcome string)
}

const defaultPublishTimeout = 3 * time.Second

// SeatSelection drives one user's seat picker for a showtime: open builds the
// grid from current availability, toggle edits the selection and submit
// turns the selection into a reservation.
type SeatSelection struct {
	API      SeatAPI
	Drafts   DraftStore
	Events   EventPublisher      // optional
	Observer ReservationObserver // optional
	Logger   *log.Logger
	Now      func() time.Time

	// PublishTimeout bounds the reservation event publish. Zero means 3s.
	PublishTimeout time.Duration
}

func NewSeatSelection(api SeatAPI, drafts DraftStore, events EventPublisher, logger *log.Logger) *SeatSelection {
	if logger == nil {
		logger = log.New("seat-selection")
	}
	return &SeatSelection{
		API:            api,
		Drafts:         drafts,
		Events:         events,
		Logger:         logger,
		Now:            time.Now,
		PublishTimeout: defaultPublishTimeout,
	}
}

// Open fetches the available seats of a showtime and stores a fresh draft
// with nothing selected. Malformed seat codes from the API are logged and
// left out of the grid.
func (s *SeatSelection) Open(ctx context.Context, sess *model.Session, movieID, showtimeID uint64) (repository.Draft, error) {
	codes, err := s.API.AvailableSeats(ctx, sess, showtimeID)
	if err != nil {
		return repository.Draft{}, err
	}
	m, err := seatmap.Build(codes)
	if err != nil {
		s.Logger.Warnf("showtime %d: skipped seat codes: %v", showtimeID, err)
	}
	d := repository.Draft{MovieID: movieID, ShowtimeID: showtimeID, Map: m, UpdatedAt: s.now()}
	if err := s.Drafts.Save(ctx, sess.ID, d); err != nil {
		return repository.Draft{}, fmt.Errorf("save draft: %w", err)
	}
	return d, nil
}

// Toggle flips one seat of the open draft. Toggling an unknown or
// unavailable seat leaves the draft as it was.
func (s *SeatSelection) Toggle(ctx context.Context, sess *model.Session, showtimeID uint64, seat string) (repository.Draft, error) {
	d, err := s.Drafts.Get(ctx, sess.ID, showtimeID)
	if err != nil {
		return repository.Draft{}, err
	}
	d.Map = seatmap.Toggle(d.Map, seat)
	d.UpdatedAt = s.now()
	if err := s.Drafts.Save(ctx, sess.ID, d); err != nil {
		return repository.Draft{}, fmt.Errorf("save draft: %w", err)
	}
	return d, nil
}

// Submit reserves the selected seats. A rejected or failed reservation keeps
// the draft so the user can adjust and retry. After success the draft is
// discarded and a reservation event is published; publishing is best effort.
func (s *SeatSelection) Submit(ctx context.Context, sess *model.Session, showtimeID uint64) (model.ReservationResult, []string, error) {
	d, err := s.Drafts.Get(ctx, sess.ID, showtimeID)
	if err != nil {
		return model.ReservationResult{}, nil, err
	}
	seats := seatmap.Selected(d.Map)
	if len(seats) == 0 {
		return model.ReservationResult{}, nil, ErrNoSeatsSelected
	}

	res, err := s.API.Reserve(ctx, sess, model.ReservationRequest{
		MovieID:    d.MovieID,
		ShowtimeID: d.ShowtimeID,
		Seats:      seats,
	})
	if err != nil {
		s.observe(outcome(err))
		return model.ReservationResult{}, nil, err
	}
	s.observe("ok")

	if err := s.Drafts.Delete(ctx, sess.ID, showtimeID); err != nil {
		// the draft outlives the reservation; make sure it cannot be resubmitted
		s.Logger.Warnf("discard draft after reservation %d: %v", res.ReservationID, err)
		d.Map = seatmap.MarkReserved(d.Map, seats)
		if err := s.Drafts.Save(ctx, sess.ID, d); err != nil {
			s.Logger.Errorf("mark draft reserved after reservation %d: %v", res.ReservationID, err)
		}
	}

	if s.Events != nil {
		ev := queue.ReservationSubmittedEvent{
			ReservationID: res.ReservationID,
			Username:      sess.Username,
			MovieID:       d.MovieID,
			ShowtimeID:    d.ShowtimeID,
			Seats:         seats,
			SubmittedAt:   s.now().UTC(),
		}
		s.publish(ctx, ev)
	}
	return res, seats, nil
}

// Discard closes the seat view of a showtime.
func (s *SeatSelection) Discard(ctx context.Context, sess *model.Session, showtimeID uint64) error {
	return s.Drafts.Delete(ctx, sess.ID, showtimeID)
}

func (s *SeatSelection) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// publish runs detached from the request context but never longer than
// PublishTimeout.
func (s *SeatSelection) publish(ctx context.Context, ev queue.ReservationSubmittedEvent) {
	timeout := s.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := s.Events.PublishReservation(ctx, ev); err != nil {
		s.Logger.Warnf("publish reservation %d: %v", ev.ReservationID, err)
	}
}

func (s *SeatSelection) observe(o string) {
	if s.Observer != nil {
		s.Observer.ObserveReservation(o)
	}
}

// outcome separates API rejections from transport or server failures.
func outcome(err error) string {
	if errors.Is(err, apiclient.ErrUpstream) {
		return "failed"
	}
	return "rejected"
}
