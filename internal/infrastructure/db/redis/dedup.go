package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const notifyTTL = 24 * time.Hour

// NotifyDedup suppresses duplicate booking notification emails, backed by
// Redis. Callers key it by submission identity, not by stored booking id, so a
// retried submission hits the key set by the first attempt. Key format:
// notify:<submission key>
type NotifyDedup struct {
	client *redis.Client
}

// NewNotifyDedup creates a NotifyDedup wrapping the given Redis client.
func NewNotifyDedup(client *redis.Client) *NotifyDedup {
	return &NotifyDedup{client: client}
}

// IsDuplicate reports whether a notification for this submission was already sent.
func (d *NotifyDedup) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.redisKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("notify dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission's notification has been sent (expires after notifyTTL).
func (d *NotifyDedup) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, d.redisKey(key), "1", notifyTTL).Err()
}

func (d *NotifyDedup) redisKey(key string) string {
	return "notify:" + key
}
