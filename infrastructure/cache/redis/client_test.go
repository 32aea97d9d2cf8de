package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"pamphlets-api/core/interfaces"
	"pamphlets-api/pkg/config"
)

// Integration tests; run with REDIS_TEST=1 against a local Redis.
func newTestCache(t *testing.T) *Cache {
	t.Helper()
	if os.Getenv("REDIS_TEST") != "1" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST=1 to run")
	}

	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}
	cache, err := NewCache(config.RedisConfig{Address: addr})
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewCache_EmptyAddress(t *testing.T) {
	cache, err := NewCache(config.RedisConfig{})

	if err == nil {
		t.Error("NewCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewCache should return nil cache for invalid config")
	}
}

func TestNewCache_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials the network")
	}

	_, err := NewCache(config.RedisConfig{Address: "127.0.0.1:1"})
	if err == nil {
		t.Error("NewCache should fail when Redis is unreachable")
	}
}

func TestCache_SetGetDelete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "test:pages"

	if err := cache.Set(ctx, key, []byte(`["a","b"]`), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != `["a","b"]` {
		t.Errorf("Get = %s", got)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestCache_Expiry(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "test:short", []byte("v"), 50*time.Millisecond)
	time.Sleep(150 * time.Millisecond)

	if _, err := cache.Get(ctx, "test:short"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after expiry error = %v, want ErrCacheMiss", err)
	}
}
