// ABOUTME: Configuration options for the Pamphlets library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package pamphlets

import (
	"time"

	"pamphlets-api/core/interfaces"
	"pamphlets-api/core/paginate"
	"pamphlets-api/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// Cache memoizes paginated pages; nil disables the page cache
	Cache interfaces.Cache

	// HTTPClient fetches pages for Import
	HTTPClient interfaces.HTTPClient

	// Logger receives structured logs
	Logger interfaces.Logger

	// Storage persists articles; nil disables Save, Get, List and Delete
	Storage interfaces.ArticleStorage

	// Flags switches optional behavior; nil uses featureflags.Defaults
	Flags featureflags.Manager

	// MaxChars is the default page size
	MaxChars int

	// PageCacheTTL is how long paginated pages stay cached
	PageCacheTTL time.Duration

	// RenderMemoSize bounds the rendered page memo
	RenderMemoSize int

	// ImportConcurrency bounds parallel fetches in ImportBatch
	ImportConcurrency int

	closers []func() error
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithStorage sets the article storage
func WithStorage(storage interfaces.ArticleStorage) Option {
	return func(c *Config) error {
		c.Storage = storage
		return nil
	}
}

// WithFlags sets the feature flag manager
func WithFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// WithMaxChars sets the default page size
func WithMaxChars(maxChars int) Option {
	return func(c *Config) error {
		if maxChars <= 0 {
			return NewError(ErrorTypeConfiguration, "max chars must be positive").
				WithContext("max_chars", maxChars)
		}
		c.MaxChars = maxChars
		return nil
	}
}

// WithPageCacheTTL sets the TTL for cached pages
func WithPageCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.PageCacheTTL = ttl
		return nil
	}
}

// WithRenderMemoSize sets how many rendered pages are kept in memory
func WithRenderMemoSize(size int) Option {
	return func(c *Config) error {
		c.RenderMemoSize = size
		return nil
	}
}

// WithImportConcurrency sets how many pages ImportBatch fetches at once
func WithImportConcurrency(n int) Option {
	return func(c *Config) error {
		c.ImportConcurrency = n
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:          DefaultMemoryCache(),
		HTTPClient:     DefaultHTTPClient(),
		Logger:         DefaultLogger(),
		Storage:        DefaultMemoryStorage(),
		MaxChars:       paginate.DefaultMaxChars,
		PageCacheTTL:   24 * time.Hour,
		RenderMemoSize: 256,
	}
}
