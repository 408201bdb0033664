// Package cache stores raw API response bodies keyed by request URL.
//
// Three backends implement [Cache]:
//   - [NullCache]: caching disabled (the default for library use)
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for multi-process setups
//
// Use [Scoped] to prefix keys so several clients can share one backend:
//
//	base, _ := cache.NewFileCache(dir)
//	api := cache.Scoped(base, "placeholder:")
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
//
// Get reports (data, true, nil) on a hit and (nil, false, nil) on a miss or an
// expired entry. Set with ttl <= 0 stores the entry without expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ScopedCache prefixes every key before delegating to an inner Cache.
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped returns a view of c whose keys are prefixed with prefix.
// Closing the view closes the inner cache. A nil c yields a NullCache view.
func Scoped(c Cache, prefix string) Cache {
	if c == nil {
		c = NewNullCache()
	}
	return &ScopedCache{inner: c, prefix: prefix}
}

// Get retrieves a value from the inner cache under the prefixed key.
func (s *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores a value in the inner cache under the prefixed key.
func (s *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes the prefixed key from the inner cache.
func (s *ScopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the inner cache.
func (s *ScopedCache) Close() error {
	return s.inner.Close()
}

var _ Cache = (*ScopedCache)(nil)
