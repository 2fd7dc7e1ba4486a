package repository

import (
	"context"
	"time"

	"locator/internal/errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented cache-aside store for expensive upstream fetches.
//
// The cache is advisory: callers must treat any non-miss error as a miss and
// proceed to the upstream, and must not fail a request because Put errored.
// Concurrent misses for one key may each fetch and each write; writes are
// idempotent overwrites so the race is only duplicate work.
type Cache interface {
	// Get returns the cached value for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key for ttl.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
