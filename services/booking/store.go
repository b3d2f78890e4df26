package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"garagehub/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "bookingSession:"

// SessionStore persists in-progress booking-creation sessions between
// dashboard requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs in Redis with a TTL, so an
// abandoned form simply expires.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionPrefix+session.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionPrefix+sessionID).Err()
}
