package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/bank-api/internal/bankapi"
	"github.com/benx421/bank-api/internal/cache"
	"github.com/benx421/bank-api/internal/config"
	"github.com/benx421/bank-api/internal/db"
	"github.com/benx421/bank-api/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting bank api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	resolver, closeCache := newBankResolver(ctx, cfg, logger)
	defer closeCache()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handlers.NewRouter(database, cfg, resolver, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// newBankResolver puts a cache in front of the bank registry client. Redis is
// used when configured and reachable; otherwise names are cached in memory.
func newBankResolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*bankapi.CachedResolver, func()) {
	client := bankapi.NewClient(&cfg.BankAPI, logger)

	if cfg.Cache.RedisAddr != "" {
		redisCache := cache.NewRedisBankNameCache(cache.NewRedisClient(&cfg.Cache), "", logger)

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		if err := redisCache.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable, caching bank names in memory", "addr", cfg.Cache.RedisAddr, "error", err)
			_ = redisCache.Close() //nolint:errcheck // already falling back
		} else {
			logger.Info("caching bank names in redis", "addr", cfg.Cache.RedisAddr)
			closeFn := func() {
				if err := redisCache.Close(); err != nil {
					logger.Warn("failed to close redis client", "error", err)
				}
			}
			return bankapi.NewCachedResolver(client, redisCache, cfg.Cache.BankNameTTL, logger), closeFn
		}
	}

	return bankapi.NewCachedResolver(client, cache.NewMemoryBankNameCache(), cfg.Cache.BankNameTTL, logger), func() {}
}
