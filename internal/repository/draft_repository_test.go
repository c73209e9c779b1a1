package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/showtime-booking/internal/seatmap"
)

func TestDraftRepo_SaveAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewDraftRepo(db, 30*time.Minute)
	ctx := context.Background()

	m, err := seatmap.Build([]string{"A1", "A3"})
	require.NoError(t, err)
	d := Draft{MovieID: 2, ShowtimeID: 9, Map: seatmap.Toggle(m, "A1"), UpdatedAt: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)}
	payload, err := json.Marshal(d)
	require.NoError(t, err)

	mock.ExpectSet("seatmap:sess:9", string(payload), 30*time.Minute).SetVal("OK")
	mock.ExpectGet("seatmap:sess:9").SetVal(string(payload))

	require.NoError(t, repo.Save(ctx, "sess", d))
	got, err := repo.Get(ctx, "sess", 9)
	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.Equal(t, []string{"A1"}, seatmap.Selected(got.Map))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepo_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewDraftRepo(db, time.Minute)

	mock.ExpectGet("seatmap:sess:1").RedisNil()

	_, err := repo.Get(context.Background(), "sess", 1)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftRepo_GetRedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewDraftRepo(db, time.Minute)

	mock.ExpectGet("seatmap:sess:1").SetErr(errors.New("connection refused"))

	_, err := repo.Get(context.Background(), "sess", 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftRepo_DeleteAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewDraftRepo(db, time.Minute)

	mock.ExpectScan(0, "seatmap:sess:*", 100).SetVal([]string{"seatmap:sess:1", "seatmap:sess:2"}, 7)
	mock.ExpectDel("seatmap:sess:1", "seatmap:sess:2").SetVal(2)
	mock.ExpectScan(7, "seatmap:sess:*", 100).SetVal([]string{}, 0)

	require.NoError(t, repo.DeleteAll(context.Background(), "sess"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
