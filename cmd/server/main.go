package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/personal-cabinet/account-api/internal/api"
	"github.com/personal-cabinet/account-api/internal/api/metrics"
	"github.com/personal-cabinet/account-api/internal/core/ports"
	"github.com/personal-cabinet/account-api/internal/core/service"
	"github.com/personal-cabinet/account-api/internal/infrastructure/config"
	mongodb "github.com/personal-cabinet/account-api/internal/infrastructure/db/mongo"
	redisdb "github.com/personal-cabinet/account-api/internal/infrastructure/db/redis"
	"github.com/personal-cabinet/account-api/internal/infrastructure/memory"
	"github.com/personal-cabinet/account-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Durable user store ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	users := mongodb.NewUserRepository(db)

	// --- Pending-registration store ---
	var pending ports.PendingStore
	var rdb *redis.Client
	switch cfg.PendingStore {
	case "redis":
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		pending = redisdb.NewPendingStore(rdb)
	default:
		store := memory.NewPendingStore(func(n int) {
			metrics.PendingEvictionsTotal.Add(float64(n))
		})
		store.StartJanitor(ctx)
		pending = store
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, service.DefaultIntermediateTTL, service.DefaultSessionTTL)
	auth := service.NewAuthService(users, pending, tokens, log)
	profile := service.NewProfileService(users, log)

	e := api.NewRouter(api.RouterDeps{
		Auth:        auth,
		Profile:     profile,
		Mongo:       db,
		Redis:       rdb,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("pending_store", cfg.PendingStore).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
