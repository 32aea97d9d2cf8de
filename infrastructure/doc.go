// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory page cache on patrickmn/go-cache
// - cache/redis: Redis page cache
// - cache/sqlite: SQLite page cache that survives restarts
// - http/standard: HTTP client used by the importer, with retry logic
// - logger/structured: logrus logger with optional file rotation
// - storage/memory: In-memory article store
// - storage/sqlite: SQLite article store
//
// # Cache Example
//
//	cache := memory.NewCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "pages:<hash>:1200", encoded, 24*time.Hour)
//	value, err := cache.Get(ctx, "pages:<hash>:1200")
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Imported article", map[string]interface{}{
//	    "url":        article.SourceURL,
//	    "article_id": article.ID,
//	})
package infrastructure
