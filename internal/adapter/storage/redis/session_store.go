package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"wager-tracker/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore using Redis. Each user has at
// most one dialogue; it expires after ttl of inactivity.
type SessionStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a new Redis-backed dialogue store.
func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "dialogue:",
		ttl:    ttl,
	}
}

func (s *SessionStore) key(userID int64) string {
	return s.prefix + strconv.FormatInt(userID, 10)
}

// Get returns the user's dialogue. Returns nil, nil if none is active.
func (s *SessionStore) Get(ctx context.Context, userID int64) (*domain.Dialogue, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}

	var d domain.Dialogue
	if err := json.Unmarshal(val, &d); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &d, nil
}

// Save stores the dialogue and restarts its expiry.
func (s *SessionStore) Save(ctx context.Context, d *domain.Dialogue) error {
	if !d.Step.Valid() {
		return fmt.Errorf("invalid dialogue step %q", d.Step)
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now().UTC()
	}

	val, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(d.UserID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis session set: %w", err)
	}
	return nil
}

// Delete ends the user's dialogue. Deleting a missing dialogue is not an error.
func (s *SessionStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	return nil
}
