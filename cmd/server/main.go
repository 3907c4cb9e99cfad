package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kristevi/ourweather/internal/api"
	"github.com/kristevi/ourweather/internal/config"
	"github.com/kristevi/ourweather/internal/location"
	"github.com/kristevi/ourweather/internal/models"
	"github.com/kristevi/ourweather/internal/scheduler"
	"github.com/kristevi/ourweather/internal/services"
	"github.com/kristevi/ourweather/pkg/client"
)

func main() {
	// Initialize logger
	logConfig := zap.NewProductionConfig()
	logger, _ := logConfig.Build()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting OurWeather service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	level, err := zapcore.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid LOG_LEVEL, keeping info", zap.String("value", cfg.Server.LogLevel))
	} else {
		logConfig.Level.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Weather API
	weatherClient := client.NewOpenWeatherClient(cfg.WeatherAPI.BaseURL, client.ClientConfig{
		Timeout:        cfg.WeatherAPI.Timeout,
		Threshold:      cfg.CircuitBreaker.Threshold,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}, logger)
	repo := services.NewRepository(weatherClient, cfg.WeatherAPI.APIKey, cfg.WeatherAPI.Language)

	// Device location
	feed := location.NewFeed(cfg.Location.Permission, cfg.Location.Enabled, logger)
	if cfg.Location.HasDefault {
		feed.Seed(models.LocationData{
			Latitude:  cfg.Location.DefaultLat,
			Longitude: cfg.Location.DefaultLon,
		})
	}
	defer feed.Close()

	// One controller per screen
	home := services.NewController(ctx, repo, feed, logger.Named("home"),
		services.WithAutoRefresh(cfg.Refresh.Enabled))
	defer home.Close()
	search := services.NewController(ctx, repo, nil, logger.Named("search"))
	defer search.Close()

	if err := home.ResolveCurrentLocation(ctx); err != nil {
		logger.Warn("Initial location fetch failed", zap.Error(err))
	}

	refresher := scheduler.NewScheduler(home, cfg.Refresh.Interval, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: api.ErrorHandler(logger),
	})

	handler := api.NewHandler(home, search, repo, feed, refresher, logger)
	api.SetupRoutes(app, handler, logger)

	refresher.Start(ctx)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server",
			zap.String("address", addr),
			zap.String("language", cfg.WeatherAPI.Language.String()))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	refresher.Stop()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
