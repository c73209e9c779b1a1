package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/showtime-booking/internal/model"
)

const sessionPrefix = "session:"

// SessionRepo stores sessions as JSON under session:<hashed id>.
type SessionRepo struct{ RDB *redis.Client }

func NewSessionRepo(rdb *redis.Client) *SessionRepo { return &SessionRepo{RDB: rdb} }

// Save writes the session with the given lifetime.
func (r *SessionRepo) Save(ctx context.Context, s model.Session, ttl time.Duration) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.RDB.Set(ctx, sessionPrefix+s.ID, string(b), ttl).Err()
}

// Get loads a session by its hashed id.
func (r *SessionRepo) Get(ctx context.Context, id string) (model.Session, error) {
	raw, err := r.RDB.Get(ctx, sessionPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, err
	}
	var s model.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	return r.RDB.Del(ctx, sessionPrefix+id).Err()
}
