// ABOUTME: Feature flags that switch optional behaviour on and off at runtime
// ABOUTME: Environment-backed and static managers share one Manager interface

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag names a toggle
type FeatureFlag string

const (
	// ImportEnabled allows POST /articles/import
	ImportEnabled FeatureFlag = "import_enabled"

	// RateLimitEnabled applies the per-IP rate limiter
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// CacheEnabled memoizes paginated pages in the configured cache
	CacheEnabled FeatureFlag = "cache_enabled"

	// YouTubeEmbeds renders YouTube links as embeds; off, they become paragraphs
	YouTubeEmbeds FeatureFlag = "youtube_embeds"
)

// All lists every known flag.
var All = []FeatureFlag{ImportEnabled, RateLimitEnabled, CacheEnabled, YouTubeEmbeds}

// Defaults are the flag states used when nothing else is configured.
var Defaults = map[FeatureFlag]bool{
	ImportEnabled:    true,
	RateLimitEnabled: true,
	CacheEnabled:     true,
	YouTubeEmbeds:    true,
}

// Manager reports and changes flag states
type Manager interface {
	IsEnabled(ctx context.Context, flag FeatureFlag) bool
	SetEnabled(flag FeatureFlag, enabled bool)
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager reads flags from environment variables named prefix+FLAG,
// e.g. FEATURE_IMPORT_ENABLED. Unset variables fall back to defaults.
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	defaults  map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates an environment-backed manager. A nil defaults map
// leaves every unset flag disabled.
func NewEnvManager(prefix string, defaults map[FeatureFlag]bool) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	d := make(map[FeatureFlag]bool, len(defaults))
	for k, v := range defaults {
		d[k] = v
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		defaults:  d,
		prefix:    prefix,
	}
}

func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if enabled, ok := m.overrides[flag]; ok {
		return enabled
	}

	value := strings.ToLower(strings.TrimSpace(os.Getenv(m.prefix + strings.ToUpper(string(flag)))))
	switch value {
	case "true", "1", "enabled", "on":
		return true
	case "false", "0", "disabled", "off":
		return false
	}
	return m.defaults[flag]
}

// SetEnabled overrides the environment for flag.
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(All))
	for _, flag := range All {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager holds flags in memory
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	m := &StaticManager{flags: make(map[FeatureFlag]bool, len(flags))}
	for k, v := range flags {
		m.flags[k] = v
	}
	return m
}

func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool, len(m.flags))
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}

type contextKey struct{}

// WithManager adds a feature flag manager to the context
func WithManager(ctx context.Context, manager Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, manager)
}

// FromContext returns the manager stored in ctx, or one with Defaults.
func FromContext(ctx context.Context) Manager {
	if manager, ok := ctx.Value(contextKey{}).(Manager); ok {
		return manager
	}
	return NewStaticManager(Defaults)
}

// IsEnabled checks flag on the manager stored in ctx.
func IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return FromContext(ctx).IsEnabled(ctx, flag)
}
