// Package redis implements the tracking snapshot cache on Redis.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TrackingCache implements ports.TrackingCache backed by a Redis client.
type TrackingCache struct {
	client *redis.Client
}

// NewTrackingCache creates a cache on the Redis instance at addr.
func NewTrackingCache(addr string) *TrackingCache {
	return &TrackingCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the cached payload for the key, or ok=false on a miss.
func (c *TrackingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return payload, true, nil
}

// Set stores the payload under the key with the given TTL.
func (c *TrackingCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Invalidate drops the key after a tracking or status update.
func (c *TrackingCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close releases the underlying client connections.
func (c *TrackingCache) Close() error {
	return c.client.Close()
}
