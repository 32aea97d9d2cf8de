// ABOUTME: In-process page cache on patrickmn/go-cache
// ABOUTME: Default when no Redis is configured; entries expire and are swept in the background

package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"pamphlets-api/core/interfaces"
)

// Cache implements interfaces.Cache in memory.
type Cache struct {
	items *cache.Cache
}

// NewCache creates a cache whose entries default to defaultTTL and are
// purged every cleanupInterval.
func NewCache(defaultTTL, cleanupInterval time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = cache.NoExpiration
	}
	return &Cache{items: cache.New(defaultTTL, cleanupInterval)}
}

// Get returns a copy of the stored value.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	stored := v.([]byte)
	out := make([]byte, len(stored))
	copy(out, stored)
	return out, nil
}

// Set stores a copy of value. A zero ttl never expires.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	c.items.Set(key, stored, ttl)
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.items.Delete(key)
	return nil
}

// Len reports the number of entries, including expired ones not yet swept.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

// Flush removes every entry.
func (c *Cache) Flush() {
	c.items.Flush()
}
