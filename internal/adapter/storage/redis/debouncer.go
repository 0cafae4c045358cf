package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Debouncer suppresses repeated button presses using Redis SET NX.
type Debouncer struct {
	client *goredis.Client
	prefix string
}

// NewDebouncer creates a new Redis-backed debouncer.
func NewDebouncer(client *goredis.Client) *Debouncer {
	return &Debouncer{
		client: client,
		prefix: "debounce:",
	}
}

// Claim atomically marks key as seen for ttl.
// Returns true on the first claim, false while the key is still held.
func (d *Debouncer) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := d.client.SetArgs(ctx, d.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis debounce claim: %w", err)
	}
	return result == "OK", nil
}
