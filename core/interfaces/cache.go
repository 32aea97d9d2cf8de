// Package interfaces defines the contracts between the core services and
// the infrastructure that backs them.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// Cache is a byte-oriented key/value cache with expiry. The book service
// keeps paginated pages in it, for example:
//
//	err := cache.Set(ctx, "pages:<hash>:1200", encoded, 24*time.Hour)
//	data, err := cache.Get(ctx, "pages:<hash>:1200")
type Cache interface {
	// Get returns the value for key, or an error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key; a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")
