package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/animal-catalog/internal/api/http"
	"github.com/spec-kit/animal-catalog/internal/api/http/handlers"
	"github.com/spec-kit/animal-catalog/internal/auth"
	"github.com/spec-kit/animal-catalog/internal/config"
	"github.com/spec-kit/animal-catalog/internal/events"
	"github.com/spec-kit/animal-catalog/internal/observability"
	"github.com/spec-kit/animal-catalog/internal/persistence"
	"github.com/spec-kit/animal-catalog/internal/repository"
	"github.com/spec-kit/animal-catalog/internal/service"
	"github.com/spec-kit/animal-catalog/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	if !pg.Ready() {
		logger.Fatal("identity stores require POSTGRES_DSN")
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set; logins will fail with a configuration error")
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, cfg.Audit))

	pool := pg.PoolHandle()
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		CustomerRepo: repository.NewCustomerRepository(pool),
		AdminRepo:    repository.NewAdminRepository(pool),
		Dispatcher:   dispatcher,
		Metrics:      metrics,
		Logger:       logger,
	})
	authMiddleware := auth.NewAuthMiddleware(authService.TokenIssuer())

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.App.BodyLimitBytes,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
		"postgres": pg,
		"redis":    redis,
	}).WithMetrics(metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
