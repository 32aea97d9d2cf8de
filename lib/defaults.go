// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for caches, storage, loggers and HTTP clients

package pamphlets

import (
	"os"
	"time"

	"pamphlets-api/core/interfaces"
	"pamphlets-api/infrastructure/cache/memory"
	sqlitecache "pamphlets-api/infrastructure/cache/sqlite"
	httpInfra "pamphlets-api/infrastructure/http/standard"
	"pamphlets-api/infrastructure/logger/structured"
	memstore "pamphlets-api/infrastructure/storage/memory"
	"pamphlets-api/infrastructure/storage/sqlite"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewClient(30 * time.Second)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewCache(time.Hour, 10*time.Minute)
}

// DefaultMemoryStorage creates an in-memory article store
func DefaultMemoryStorage() interfaces.ArticleStorage {
	return memstore.NewStore()
}

// DefaultLogger creates a text logger on stderr at warn level
func DefaultLogger() interfaces.Logger {
	return structured.NewWithWriter(os.Stderr, "warn")
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithoutCache disables the page cache
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = nil
		return nil
	}
}

// WithSQLiteStorage stores articles in a SQLite file. The database is
// closed by Client.Close.
func WithSQLiteStorage(filePath string) Option {
	return func(c *Config) error {
		if filePath == "" {
			filePath = "pamphlets.db"
		}
		store, err := sqlite.NewStore(filePath)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to open sqlite storage").
				WithCause(err).
				WithContext("path", filePath)
		}
		c.Storage = store
		c.closers = append(c.closers, store.Close)
		return nil
	}
}

// WithSQLiteCache keeps paginated pages in a SQLite file so they survive
// restarts. The database is closed by Client.Close.
func WithSQLiteCache(filePath string) Option {
	return func(c *Config) error {
		cache, err := sqlitecache.NewCache(filePath, 10*time.Minute)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").
				WithCause(err).
				WithContext("path", filePath)
		}
		c.Cache = cache
		c.closers = append(c.closers, cache.Close)
		return nil
	}
}
