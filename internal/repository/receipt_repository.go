package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/showtime-booking/internal/model"
)

// ReceiptRepo persists receipts of reservations submitted through the front
// end. Seats are stored as a comma separated list in row-major order.
type ReceiptRepo struct{ DB *sql.DB }

func NewReceiptRepo(db *sql.DB) *ReceiptRepo { return &ReceiptRepo{DB: db} }

// Insert records a receipt. reservation_id is unique, so redelivered events
// are absorbed without creating a second row.
func (r *ReceiptRepo) Insert(ctx context.Context, rc model.Receipt) error {
	if r == nil || r.DB == nil {
		return ErrReceiptsDisabled
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO reservation_receipts (reservation_id, username, movie_id, showtime_id, seats, submitted_at)
		 VALUES (?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE reservation_id = reservation_id`,
		rc.ReservationID, rc.Username, rc.MovieID, rc.ShowtimeID, strings.Join(rc.Seats, ","), rc.SubmittedAt.UTC())
	return err
}

// ListByUsername returns the newest receipts of a user first.
func (r *ReceiptRepo) ListByUsername(ctx context.Context, username string, limit int) ([]model.Receipt, error) {
	if r == nil || r.DB == nil {
		return nil, ErrReceiptsDisabled
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, reservation_id, username, movie_id, showtime_id, seats, submitted_at
		 FROM reservation_receipts WHERE username = ? ORDER BY submitted_at DESC, id DESC LIMIT ?`,
		username, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Receipt{}
	for rows.Next() {
		var (
			rc    model.Receipt
			seats string
			at    time.Time
		)
		if err := rows.Scan(&rc.ID, &rc.ReservationID, &rc.Username, &rc.MovieID, &rc.ShowtimeID, &seats, &at); err != nil {
			return nil, err
		}
		rc.Seats = splitSeats(seats)
		rc.SubmittedAt = at.UTC()
		out = append(out, rc)
	}
	return out, rows.Err()
}

func splitSeats(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
