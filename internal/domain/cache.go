package domain

import (
	"context"
	"time"
)

// Cache is a look-aside cache for resolved mappings. A miss is ("", nil),
// not an error; the mapping store stays the source of truth and callers
// must treat every cache failure as a miss.
type Cache interface {
	// Get returns the cached full URL for id, or "" on a miss.
	Get(ctx context.Context, id string) (string, error)

	// Set stores the full URL for id with the given TTL.
	Set(ctx context.Context, id, fullURL string, ttl time.Duration) error

	// Delete removes id from the cache.
	Delete(ctx context.Context, id string) error

	// Ping checks that the cache backend is reachable.
	Ping(ctx context.Context) error
}
