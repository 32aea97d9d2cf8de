// ABOUTME: Application configuration loaded from the environment and an optional .env file
// ABOUTME: Groups server, cache, storage, book, rate limit, logging and import settings

package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pamphlets-api/pkg/utils/parse"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Storage   StorageConfig
	Book      BookConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Import    ImportConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// CacheConfig selects and configures the page cache backend
type CacheConfig struct {
	// Type is "redis", "sqlite" or "memory"
	Type       string
	Redis      RedisConfig
	Memory     MemoryConfig
	SQLitePath string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// MemoryConfig holds in-memory cache settings
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for entries in seconds
	DefaultExpiration int
}

// StorageConfig selects where articles are persisted
type StorageConfig struct {
	// Type is "sqlite" or "memory"
	Type       string
	SQLitePath string
}

// BookConfig tunes pagination and rendering
type BookConfig struct {
	MaxPageChars   int
	RenderMemoSize int
	PageCacheTTL   time.Duration
}

// RateLimitConfig limits requests per client IP
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// LogConfig configures the structured logger
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// ImportConfig tunes the URL importer
type ImportConfig struct {
	Timeout  time.Duration
	MaxBatch int
}

// Load reads .env files (default ".env") into the environment without
// overriding variables that are already set, then calls LoadFromEnv.
func Load(files ...string) (*Config, error) {
	// A missing .env file is normal in production.
	_ = godotenv.Load(files...)
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ReadTimeout:     getEnvAsSecondsOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsSecondsOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsSecondsOrDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLitePath: getEnvOrDefault("CACHE_SQLITE_PATH", "pages.db"),
		},
		Storage: StorageConfig{
			Type:       getEnvOrDefault("STORAGE_TYPE", "memory"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "pamphlets.db"),
		},
		Book: BookConfig{
			MaxPageChars:   getEnvAsIntOrDefault("BOOK_MAX_PAGE_CHARS", 1200),
			RenderMemoSize: getEnvAsIntOrDefault("BOOK_RENDER_MEMO_SIZE", 256),
			PageCacheTTL:   getEnvAsSecondsOrDefault("BOOK_PAGE_CACHE_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT_REQUESTS", 60),
			Window:   getEnvAsSecondsOrDefault("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Import: ImportConfig{
			Timeout:  getEnvAsSecondsOrDefault("IMPORT_TIMEOUT", 20*time.Second),
			MaxBatch: getEnvAsIntOrDefault("IMPORT_MAX_BATCH", 10),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	return parse.IntOr(os.Getenv(key), defaultValue)
}

func getEnvAsSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	return parse.SecondsOr(os.Getenv(key), defaultValue)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "redis", "sqlite", "memory":
	default:
		return errors.New("cache type must be 'redis', 'sqlite' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Storage.Type != "sqlite" && c.Storage.Type != "memory" {
		return errors.New("storage type must be 'sqlite' or 'memory'")
	}

	if c.Storage.Type == "sqlite" && c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite storage")
	}

	if c.Book.MaxPageChars < 100 {
		return errors.New("book max page chars must be at least 100")
	}

	if c.Book.RenderMemoSize < 1 {
		return errors.New("book render memo size must be at least 1")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit requires a positive request count and window")
	}

	if c.Import.MaxBatch < 1 {
		return errors.New("import max batch must be at least 1")
	}

	return nil
}
