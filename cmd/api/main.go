// ABOUTME: Main entry point for the Pamphlets API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pamphlets-api/api"
	"pamphlets-api/api/handlers"
	"pamphlets-api/core/articles"
	"pamphlets-api/core/book"
	"pamphlets-api/core/importer"
	"pamphlets-api/core/interfaces"
	"pamphlets-api/infrastructure/cache/memory"
	"pamphlets-api/infrastructure/cache/redis"
	sqlitecache "pamphlets-api/infrastructure/cache/sqlite"
	stdhttp "pamphlets-api/infrastructure/http/standard"
	"pamphlets-api/infrastructure/logger/structured"
	memstore "pamphlets-api/infrastructure/storage/memory"
	"pamphlets-api/infrastructure/storage/sqlite"
	"pamphlets-api/pkg/config"
	"pamphlets-api/pkg/featureflags"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_", featureflags.Defaults)
	logger.Info("Starting Pamphlets API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"cache_type":   cfg.Cache.Type,
		"storage_type": cfg.Storage.Type,
		"flags":        flags.GetAllFlags(),
	})

	cache, closeCache := newCache(cfg, logger)
	defer closeCache()

	storage, closeStorage, err := newStorage(cfg, logger)
	if err != nil {
		logger.Error("Failed to open article storage", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer closeStorage()

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: stdhttp.NewClient(cfg.Import.Timeout),
		Logger:     logger,
		Storage:    storage,
	}

	bookService, err := book.NewService(deps, book.Options{
		MaxChars:       cfg.Book.MaxPageChars,
		PageCacheTTL:   cfg.Book.PageCacheTTL,
		RenderMemoSize: cfg.Book.RenderMemoSize,
	})
	if err != nil {
		logger.Error("Failed to create book service", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	articleService := articles.NewService(deps)
	importService := importer.NewService(deps, importer.Options{})

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		Flags:      flags,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
	})

	handlers.NewRenderHandler(bookService).RegisterRoutes(humaAPI)
	handlers.NewBookHandler(bookService, articleService).RegisterRoutes(humaAPI)
	handlers.NewArticleHandler(articleService).RegisterRoutes(humaAPI)
	handlers.NewImportHandler(importService, articleService, logger, cfg.Import.MaxBatch).RegisterRoutes(humaAPI)
	handlers.NewEmbedHandler().RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the page cache. A Redis or SQLite cache that cannot be
// opened falls back to memory.
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	ttl := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	fallback := func() (interfaces.Cache, func()) {
		return memory.NewCache(ttl, 10*time.Minute), func() {}
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return fallback()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, func() { _ = redisCache.Close() }

	case "sqlite":
		sqliteCache, err := sqlitecache.NewCache(cfg.Cache.SQLitePath, 5*time.Minute)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.Cache.SQLitePath,
			})
			return fallback()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache, func() { _ = sqliteCache.Close() }
	}

	logger.Info("Using memory cache", nil)
	return fallback()
}

func newStorage(cfg *config.Config, logger interfaces.Logger) (interfaces.ArticleStorage, func(), error) {
	if cfg.Storage.Type != "sqlite" {
		logger.Info("Using memory article storage", nil)
		return memstore.NewStore(), func() {}, nil
	}

	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.Storage.SQLitePath, err)
	}

	logger.Info("Using SQLite article storage", map[string]interface{}{
		"path": cfg.Storage.SQLitePath,
	})
	return store, func() { _ = store.Close() }, nil
}

func init() {
	fmt.Println(`
    ____                        __    __     __
   / __ \____ _____ ___  ____  / /_  / /__  / /______
  / /_/ / __ '/ __ '__ \/ __ \/ __ \/ / _ \/ __/ ___/
 / ____/ /_/ / / / / / / /_/ / / / / /  __/ /_(__  )
/_/    \__,_/_/ /_/ /_/ .___/_/ /_/_/\___/\__/____/
                     /_/
	`)
}
