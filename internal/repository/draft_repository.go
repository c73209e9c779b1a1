package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/showtime-booking/internal/seatmap"
)

// Draft is the state of an open seat-selection view: the seat map built from
// the last availability fetch plus the user's selection toggles.
type Draft struct {
	MovieID    uint64      `json:"movie_id"`
	ShowtimeID uint64      `json:"showtime_id"`
	Map        seatmap.Map `json:"map"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// DraftRepo keeps one draft per (session, showtime) under
// seatmap:<session>:<showtime>. Every save refreshes the TTL.
type DraftRepo struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewDraftRepo(rdb *redis.Client, ttl time.Duration) *DraftRepo {
	return &DraftRepo{RDB: rdb, TTL: ttl}
}

func draftKey(sessionID string, showtimeID uint64) string {
	return "seatmap:" + sessionID + ":" + strconv.FormatUint(showtimeID, 10)
}

func (r *DraftRepo) Save(ctx context.Context, sessionID string, d Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return r.RDB.Set(ctx, draftKey(sessionID, d.ShowtimeID), string(b), r.TTL).Err()
}

func (r *DraftRepo) Get(ctx context.Context, sessionID string, showtimeID uint64) (Draft, error) {
	raw, err := r.RDB.Get(ctx, draftKey(sessionID, showtimeID)).Result()
	if errors.Is(err, redis.Nil) {
		return Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return Draft{}, err
	}
	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}

func (r *DraftRepo) Delete(ctx context.Context, sessionID string, showtimeID uint64) error {
	return r.RDB.Del(ctx, draftKey(sessionID, showtimeID)).Err()
}

// DeleteAll drops every draft of a session. Used on logout.
func (r *DraftRepo) DeleteAll(ctx context.Context, sessionID string) error {
	var cursor uint64
	pattern := "seatmap:" + sessionID + ":*"
	for {
		keys, next, err := r.RDB.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.RDB.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
