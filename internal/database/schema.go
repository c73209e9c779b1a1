package database

import (
	"context"
	"database/sql"
	"fmt"
)

const receiptsTable = `CREATE TABLE IF NOT EXISTS reservation_receipts (
	id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	reservation_id BIGINT UNSIGNED NOT NULL,
	username       VARCHAR(191)    NOT NULL,
	movie_id       BIGINT UNSIGNED NOT NULL,
	showtime_id    BIGINT UNSIGNED NOT NULL,
	seats          TEXT            NOT NULL,
	submitted_at   DATETIME        NOT NULL,
	created_at     DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uq_receipts_reservation (reservation_id),
	KEY idx_receipts_user_time (username, submitted_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// EnsureSchema creates the tables this service owns when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, receiptsTable); err != nil {
		return fmt.Errorf("create reservation_receipts: %w", err)
	}
	return nil
}
