package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pageza/ecocart/backend/config"
	"github.com/pageza/ecocart/backend/internal/api"
	"github.com/pageza/ecocart/backend/internal/database"
	"github.com/pageza/ecocart/backend/internal/logging"
	"github.com/pageza/ecocart/backend/internal/metrics"
	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/router"
	"github.com/pageza/ecocart/backend/internal/seed"
	"github.com/pageza/ecocart/backend/internal/server"
	"github.com/pageza/ecocart/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	// Initialize database
	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		fixture, err := seed.Load(ctx, cfg.SeedSource, seed.S3Fetcher(cfg.AWSRegion))
		if err == nil {
			_, err = seed.Apply(ctx, db, fixture, logger.WithField("component", "seed"))
		}
		cancel()
		if err != nil {
			logger.Fatalf("Failed to seed sample data: %v", err)
		}
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize services
	authService, err := service.NewAuthService(db, cfg.JWTSecret, logger.WithField("component", "auth"))
	if err != nil {
		logger.Fatalf("Failed to initialise auth: %v", err)
	}
	services := api.Services{
		Auth:     authService,
		Catalog:  service.NewCatalogService(db),
		Cart:     service.NewCartService(db, logrus.NewEntry(logger)),
		Activity: service.NewActivityService(db),
		Recipe:   service.NewRecipeService(db, logrus.NewEntry(logger)),
	}

	opts := api.Options{
		ExposeInternalErrors: cfg.ExposeInternalErrors,
		DebugRoutes:          cfg.DebugRoutes,
		StaticDir:            cfg.StaticDir,
		HealthChecks: map[string]api.HealthChecker{
			"database": func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
		},
	}
	if cfg.RateLimitPerMinute > 0 {
		opts.AuthLimiter = middleware.NewAuthRateLimiter(redisClient, cfg.RateLimitPerMinute)
	}
	if redisClient != nil {
		opts.HealthChecks["redis"] = redisHealth(redisClient)
	}

	handler := router.SetupRouter(router.Config{
		Services:           services,
		Options:            opts,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:            metrics.New(),
		Log:                logger,
	})

	// Create and start server
	srv := server.New(cfg, handler, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Received signal")
	}

	// Gracefully shutdown the server
	logger.Info("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatalf("Server shutdown error: %v", err)
	}
	logger.Info("Server stopped")
}

func redisHealth(client *redis.Client) api.HealthChecker {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

