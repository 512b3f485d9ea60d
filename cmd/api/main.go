// Package main is the entry point for the Life Manager API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/life-manager/backend/config"
	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/infra/db"
	"github.com/life-manager/backend/internal/infra/dependency"
	"github.com/life-manager/backend/internal/infra/redis"
	"github.com/life-manager/backend/internal/integration/cache"
	"github.com/life-manager/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Life Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.Open(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(model.All()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully", "driver", database.Driver())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queryCache, cacheHealth := setupCache(ctx, cfg)

	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Cache:       queryCache,
		CacheHealth: cacheHealth,
	})
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	go injector.TokenSweeper.Start(ctx)

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// setupCache connects to Redis when caching is enabled. Any failure degrades
// to the no-op cache and a nil health check.
func setupCache(ctx context.Context, cfg *config.Config) (adapter.QueryCache, func() bool) {
	if !cfg.Redis.Enabled {
		slog.Info("Query cache disabled")
		return cache.NewNoopQueryCache(), nil
	}

	client, err := redis.Connect(ctx, &cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without query cache", "error", err)
		return cache.NewNoopQueryCache(), nil
	}

	slog.Info("Query cache enabled", "ttl", cfg.Redis.CacheTTL)
	return cache.NewRedisQueryCache(client, cfg.Redis.CacheTTL), redis.HealthCheck(client)
}
