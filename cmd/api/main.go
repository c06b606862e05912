package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/loads-service/internal/api/http"
	"github.com/spec-kit/loads-service/internal/api/http/handlers"
	"github.com/spec-kit/loads-service/internal/auth"
	"github.com/spec-kit/loads-service/internal/cache"
	"github.com/spec-kit/loads-service/internal/config"
	"github.com/spec-kit/loads-service/internal/events"
	"github.com/spec-kit/loads-service/internal/observability"
	"github.com/spec-kit/loads-service/internal/persistence"
	"github.com/spec-kit/loads-service/internal/repository"
	"github.com/spec-kit/loads-service/internal/service"
	"github.com/spec-kit/loads-service/internal/worker"
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

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(ctx)

	if cfg.Mongo.EnsureIndexes {
		if err := persistence.EnsureIndexes(ctx, mongo, logger); err != nil {
			logger.Fatal("failed to ensure indexes", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	userRepo := repository.NewUserRepository(mongo.Database)
	loadRepo := repository.NewLoadRepository(mongo.Database)
	loadCache := cache.NewLoadCache(redis.Client, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	loadService := service.NewLoadService(service.LoadDependencies{
		LoadRepo:   loadRepo,
		Cache:      loadCache,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, metrics, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Loads:          handlers.NewLoadsHandler(loadService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
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
