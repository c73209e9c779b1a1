package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/showtime-booking/internal/model"
)

func testSession() model.Session {
	return model.Session{
		ID:        "abc123",
		Username:  "ana",
		Role:      "user",
		Token:     "tok",
		ExpiresAt: time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionRepo_SaveAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewSessionRepo(db)
	ctx := context.Background()
	s := testSession()

	payload, err := json.Marshal(s)
	require.NoError(t, err)

	mock.ExpectSet("session:abc123", string(payload), time.Hour).SetVal("OK")
	mock.ExpectGet("session:abc123").SetVal(string(payload))

	require.NoError(t, repo.Save(ctx, s, time.Hour))
	got, err := repo.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewSessionRepo(db)

	mock.ExpectGet("session:nope").RedisNil()

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewSessionRepo(db)

	mock.ExpectDel("session:abc123").SetVal(1)

	assert.NoError(t, repo.Delete(context.Background(), "abc123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
