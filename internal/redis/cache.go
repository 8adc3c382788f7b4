package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps short-lived snapshots of the bookable slot list per
// day. It only serves reads; booking always re-validates against the stores
// inside the slot lock.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(day string) string {
	return fmt.Sprintf("availability:%s", day)
}

// Get returns the cached slot list for a day. The second return value is
// false on a miss or on any redis error; callers fall through to the stores.
func (c *AvailabilityCache) Get(ctx context.Context, day string) ([]string, bool) {
	raw, err := c.client.Get(ctx, availabilityKey(day)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, day string, slots []string) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("marshal availability snapshot: %w", err)
	}

	if err := c.client.Set(ctx, availabilityKey(day), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache availability snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot for a day after a booking, a cancellation or
// an admin schedule change.
func (c *AvailabilityCache) Invalidate(ctx context.Context, day string) error {
	if err := c.client.Del(ctx, availabilityKey(day)).Err(); err != nil {
		return fmt.Errorf("invalidate availability snapshot: %w", err)
	}
	return nil
}
