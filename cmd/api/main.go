package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillport-api/internal/api"
	"skillport-api/internal/config"
	"skillport-api/internal/logger"
	"skillport-api/internal/service"
	"skillport-api/internal/storage/memory"
	"skillport-api/internal/storage/postgres"
	"skillport-api/internal/storage/redis"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting skillport api",
		zap.String("log_level", cfg.LogLevel),
		zap.String("storage_driver", cfg.StorageDriver),
		zap.String("addr", cfg.HTTPAddr),
	)

	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	var cache *redis.Cache
	if cfg.RateLimitEnabled() {
		log.Info("connecting to Redis...")
		cache, err = redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer cache.Close()

		log.Info("Redis connected successfully")
	} else {
		log.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	srv := api.New(cfg, store, cache, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	log.Info("api is running...")

	if err := srv.Start(ctx); err != nil {
		log.Error("server stopped with error", zap.Error(err))
	}

	log.Info("shutting down gracefully...")
}

func openStore(cfg *config.Config, log *zap.Logger) (service.Store, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	}

	log.Info("connecting to PostgreSQL...")
	store, err := postgres.New(cfg.PostgresDSN, log)
	if err != nil {
		return nil, err
	}

	log.Info("PostgreSQL connected successfully")

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return store, nil
}
