package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Nowell222/green-path-ai/docs"
	"github.com/Nowell222/green-path-ai/internal/api"
	"github.com/Nowell222/green-path-ai/internal/core/service"
	"github.com/Nowell222/green-path-ai/internal/infrastructure/config"
	"github.com/Nowell222/green-path-ai/internal/infrastructure/directory"
	mongodb "github.com/Nowell222/green-path-ai/internal/infrastructure/db/mongo"
	redisdb "github.com/Nowell222/green-path-ai/internal/infrastructure/db/redis"
	"github.com/Nowell222/green-path-ai/internal/infrastructure/queue"
	"github.com/Nowell222/green-path-ai/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, log)
	dispatcher.Start(ctx)

	dir := directory.New(directory.DemoAccounts())
	registry := service.NewRegistry(func(ctx context.Context, contextID string) *service.AuthService {
		store := redisdb.NewSessionStore(rdb, redisdb.SessionKey(contextID), log)
		return service.NewAuthService(ctx, contextID, dir, store, dispatcher, cfg.LoginDelay(), log)
	}, cfg.MaxContexts)

	e := api.NewRouter(registry, auditRepo, db, rdb, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
