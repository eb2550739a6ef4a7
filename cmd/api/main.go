package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/training-marketplace/internal/api/http"
	"github.com/spec-kit/training-marketplace/internal/api/http/handlers"
	"github.com/spec-kit/training-marketplace/internal/auth"
	"github.com/spec-kit/training-marketplace/internal/config"
	"github.com/spec-kit/training-marketplace/internal/events"
	"github.com/spec-kit/training-marketplace/internal/observability"
	"github.com/spec-kit/training-marketplace/internal/persistence"
	"github.com/spec-kit/training-marketplace/internal/seed"
	"github.com/spec-kit/training-marketplace/internal/service"
	"github.com/spec-kit/training-marketplace/internal/store"
	"github.com/spec-kit/training-marketplace/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		if err := persistence.SeedTables(ctx, pg.Pool, seed.Fixtures()); err != nil {
			logger.Fatal("failed to seed fixture tables", zap.Error(err))
		}
	}

	fixtures, err := loadSeed(ctx, pg)
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.Error(err))
	}

	var passwords auth.PasswordMatcher = auth.PlainMatcher{}
	if cfg.Auth.HashPasswords {
		fixtures.Users, err = auth.HashUsers(fixtures.Users, cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to hash seeded passwords", zap.Error(err))
		}
		passwords = auth.BcryptMatcher{}
	}

	now, err := cfg.Catalog.Now()
	if err != nil {
		logger.Fatal("invalid catalog clock", zap.Error(err))
	}

	entities := store.New(fixtures)
	logger.Info("store seeded",
		zap.Int("events", len(fixtures.Events)),
		zap.Int("users", len(fixtures.Users)),
	)

	dispatcher := events.NewInMemoryDispatcher()
	dependencies := map[string]handlers.Pinger{}
	if pg.Enabled() {
		dependencies["postgres"] = pg
	}

	var publisher service.Publisher
	if redis := persistence.NewRedis(cfg.Redis, logger); redis != nil {
		defer redis.Close()
		publisher = redis
		dependencies["redis"] = redis
	}
	notificationService := service.NewNotificationService(dispatcher, publisher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(service.AuthDependencies{
		Store:      entities,
		Passwords:  passwords,
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	eventService := service.NewEventService(service.EventDependencies{
		Store:      entities,
		IDs:        service.NewClockIDs(now),
		Dispatcher: dispatcher,
		Logger:     logger,
		Now:        now,
	})
	catalogService := service.NewCatalogService(entities, now)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), entities)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, dependencies),
		Auth:           handlers.NewAuthHandler(authService),
		Events:         handlers.NewEventsHandler(eventService, catalogService),
		Admin:          handlers.NewAdminHandler(eventService, catalogService),
		Dashboard:      handlers.NewDashboardHandler(catalogService),
		AuthMiddleware: authMiddleware,
		LoginLimit:     cfg.Auth.LoginRateLimit,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// loadSeed reads fixtures from Postgres when configured and falls back to
// the built-in data otherwise.
func loadSeed(ctx context.Context, pg *persistence.Postgres) (store.Seed, error) {
	if !pg.Enabled() {
		return seed.Fixtures(), nil
	}
	return persistence.LoadFixtures(ctx, pg.Pool)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
