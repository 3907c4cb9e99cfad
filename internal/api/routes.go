package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *Handler, log *zap.Logger) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,DELETE",
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API v1 routes
	api := app.Group("/api/v1")

	api.Get("/health", handler.GetHealth)

	// Location screen
	home := api.Group("/home")
	home.Get("/", handler.GetHome)
	home.Get("/events", handler.HomeEvents)
	home.Post("/location", handler.PostLocation)
	home.Post("/locate", handler.PostLocate)
	home.Post("/refresh", handler.PostRefresh)
	home.Post("/auto-refresh", handler.PostAutoRefresh)
	home.Post("/retry", handler.PostHomeRetry)
	home.Delete("/error", handler.DeleteHomeError)

	// Search screen
	search := api.Group("/search")
	search.Get("/", handler.GetSearch)
	search.Post("/retry", handler.PostSearchRetry)

	api.Get("/weather/current", handler.GetCurrentWeather)
	api.Get("/uv/forecast", handler.GetUVForecast)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		log.Debug("Route not found", zap.String("path", c.Path()))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})
}

// ErrorHandler renders errors returned by handlers as JSON.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log.Error("HTTP error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))

		// Default to 500 status code
		code := fiber.StatusInternalServerError

		// Check if it's a Fiber error
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		return c.Status(code).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}
}
