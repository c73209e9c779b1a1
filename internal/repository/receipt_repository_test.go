package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/showtime-booking/internal/model"
)

func TestReceiptRepo_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReceiptRepo(db)

	rc := model.Receipt{
		ReservationID: 77,
		Username:      "ana",
		MovieID:       3,
		ShowtimeID:    9,
		Seats:         []string{"A1", "B1"},
		SubmittedAt:   time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservation_receipts")).
		WithArgs(uint64(77), "ana", uint64(3), uint64(9), "A1,B1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Insert(context.Background(), rc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_ListByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReceiptRepo(db)

	at := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "reservation_id", "username", "movie_id", "showtime_id", "seats", "submitted_at"}).
		AddRow(2, 78, "ana", 3, 9, "C4", at).
		AddRow(1, 77, "ana", 3, 9, "", at.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservation_receipts WHERE username = ?")).
		WithArgs("ana", 50).
		WillReturnRows(rows)

	got, err := repo.ListByUsername(context.Background(), "ana", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(78), got[0].ReservationID)
	assert.Equal(t, []string{"C4"}, got[0].Seats)
	assert.Equal(t, []string{}, got[1].Seats)
	assert.True(t, at.Equal(got[0].SubmittedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_Disabled(t *testing.T) {
	var repo *ReceiptRepo
	_, err := repo.ListByUsername(context.Background(), "ana", 10)
	assert.ErrorIs(t, err, ErrReceiptsDisabled)
	assert.ErrorIs(t, repo.Insert(context.Background(), model.Receipt{}), ErrReceiptsDisabled)
}
