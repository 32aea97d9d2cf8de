// ABOUTME: SQLite page cache on mattn/go-sqlite3
// ABOUTME: Paginated pages survive restarts without running Redis

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pamphlets-api/core/interfaces"
)

// MaxKeyLength bounds cache keys; page keys are well under it.
const MaxKeyLength = 255

const schema = `
	CREATE TABLE IF NOT EXISTS cache (
		key    TEXT PRIMARY KEY,
		value  BLOB NOT NULL,
		expiry INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_cache_expiry ON cache(expiry);
`

// noExpiry is stored for entries set with a zero ttl.
const noExpiry = 0

// Cache implements interfaces.Cache on a SQLite file.
type Cache struct {
	db       *sql.DB
	filePath string
	now      func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewCache opens (creating if needed) the cache database at filePath and
// sweeps expired rows every cleanupInterval. A zero interval disables the sweep.
func NewCache(filePath string, cleanupInterval time.Duration) (*Cache, error) {
	if filePath == "" {
		filePath = "pages.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	c := &Cache{db: db, filePath: filePath, now: time.Now, stop: make(chan struct{})}
	if cleanupInterval > 0 {
		go c.cleanupRoutine(cleanupInterval)
	}
	return c, nil
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("key exceeds %d bytes", MaxKeyLength)
	}
	return nil
}

// Get returns the value for key, or interfaces.ErrCacheMiss when it is
// absent or expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx,
		"SELECT value FROM cache WHERE key = ? AND (expiry = ? OR expiry > ?)",
		key, noExpiry, c.now().UnixNano(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

// Set stores value under key. A zero ttl never expires.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}

	expiry := int64(noExpiry)
	if ttl > 0 {
		expiry = c.now().Add(ttl).UnixNano()
	}
	if value == nil {
		value = []byte{}
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)",
		key, value, expiry,
	)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes key; a missing key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func (c *Cache) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = c.Cleanup(context.Background())
		case <-c.stop:
			return
		}
	}
}

// Cleanup deletes expired rows and reports how many were removed.
func (c *Cache) Cleanup(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx,
		"DELETE FROM cache WHERE expiry != ? AND expiry <= ?",
		noExpiry, c.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up cache: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns entry counts and the database size.
func (c *Cache) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := map[string]interface{}{"file_path": c.filePath}

	var total, expired int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cache").Scan(&total); err != nil {
		return nil, err
	}
	if err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cache WHERE expiry != ? AND expiry <= ?",
		noExpiry, c.now().UnixNano(),
	).Scan(&expired); err != nil {
		return nil, err
	}
	stats["total_entries"] = total
	stats["expired_entries"] = expired

	var pageCount, pageSize int
	if err := c.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := c.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}
	return stats, nil
}

// Close stops the sweep and closes the database.
func (c *Cache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return c.db.Close()
}
