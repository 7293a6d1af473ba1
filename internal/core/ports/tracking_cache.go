package ports

import (
	"context"
	"time"
)

// TrackingCache is a read-through cache for tracking snapshots served to
// customers polling their shipments. Misses and cache failures both fall
// back to the database; the cache is an optimization, never a source of
// truth.
type TrackingCache interface {
	// Get returns the cached payload for the key, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)

	// Set stores the payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate drops the key after a tracking or status update.
	Invalidate(ctx context.Context, key string) error
}
