package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bikehub-frontend/internal/api/http"
	"github.com/spec-kit/bikehub-frontend/internal/api/http/handlers"
	"github.com/spec-kit/bikehub-frontend/internal/auth"
	"github.com/spec-kit/bikehub-frontend/internal/config"
	"github.com/spec-kit/bikehub-frontend/internal/events"
	"github.com/spec-kit/bikehub-frontend/internal/observability"
	"github.com/spec-kit/bikehub-frontend/internal/persistence"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/internal/service"
	"github.com/spec-kit/bikehub-frontend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()
	client, err := repository.NewClient(cfg.API, logger, metrics)
	if err != nil {
		logger.Fatal("invalid API configuration", zap.Error(err))
	}
	if cfg.API.ContractPath != "" {
		if err := repository.VerifyContract(ctx, cfg.API.ContractPath); err != nil {
			logger.Fatal("API contract mismatch", zap.String("contract", cfg.API.ContractPath), zap.Error(err))
		}
		logger.Info("API contract verified", zap.String("contract", cfg.API.ContractPath))
	}

	checks := map[string]handlers.Pinger{"api": client}
	var storage httptransport.StorageFactory

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		checks["redis"] = redis
		storage = httptransport.ScopedStorage(redis, cfg.Storage.SecureCookies)
	case config.StoragePostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		checks["postgres"] = pg
		storage = httptransport.ScopedStorage(pg, cfg.Storage.SecureCookies)
	case config.StorageMemory:
		storage = httptransport.ScopedStorage(persistence.NewMemory(), cfg.Storage.SecureCookies)
	default:
		storage = httptransport.CookieStorage(cfg.Storage)
	}
	logger.Info("token storage selected", zap.String("backend", cfg.Storage.Backend))

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartSessionAudit(service.NewSessionAuditService(dispatcher, logger))

	app := httptransport.NewApp(httptransport.AppDependencies{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Repos:   repository.NewRepositories(client),
		Storage: storage,
		Codec:   auth.NewCodec(cfg.Auth.RejectExpired),
		Events:  dispatcher,
		Checks:  checks,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()
	logger.Info("bikehub front-end listening", zap.String("addr", cfg.App.Addr()), zap.String("api", client.BaseURL()))

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
