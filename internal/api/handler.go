package api

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/kristevi/ourweather/internal/display"
	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/location"
	"github.com/kristevi/ourweather/internal/models"
	"github.com/kristevi/ourweather/internal/services"
	"github.com/kristevi/ourweather/pkg/client"
)

// Lookup serves the one-shot queries that bypass screen state.
type Lookup interface {
	Language() locale.Language
	CurrentWeatherByID(ctx context.Context, cityID int) (*models.CurrentWeatherResponse, error)
	UVIndexForecast(ctx context.Context, lat, lon float64, count int) ([]models.UVIndexResponse, error)
}

type StatusProvider interface {
	GetStatus() map[string]interface{}
}

type Handler struct {
	home      *services.Controller
	search    *services.Controller
	lookup    Lookup
	feed      *location.Feed
	scheduler StatusProvider
	logger    *zap.Logger
	now       func() time.Time
	keepAlive time.Duration
}

// NewHandler wires the two screens. feed and scheduler may be nil.
func NewHandler(home, search *services.Controller, lookup Lookup, feed *location.Feed, scheduler StatusProvider, logger *zap.Logger) *Handler {
	return &Handler{
		home:      home,
		search:    search,
		lookup:    lookup,
		feed:      feed,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
		keepAlive: 15 * time.Second,
	}
}

// statusFor maps a controller error to an HTTP status. The body still
// carries the screen state with its localized message.
func statusFor(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, location.ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, location.ErrLocationDisabled), errors.Is(err, services.ErrNothingToRetry):
		return fiber.StatusConflict
	case client.IsNotFound(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}

func (h *Handler) homeView() HomeView {
	return BuildHomeView(h.home.State(), h.now(), h.home.Language())
}

func (h *Handler) searchView() SearchView {
	return BuildSearchView(h.search.State(), h.now(), h.search.Language())
}

func (h *Handler) respondHome(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(h.homeView())
}

func (h *Handler) respondSearch(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(h.searchView())
}

// GetHome handles GET /api/v1/home
func (h *Handler) GetHome(c *fiber.Ctx) error {
	return c.JSON(h.homeView())
}

// HomeEvents handles GET /api/v1/home/events. Each state change is sent as
// a "state" event carrying the home view. The server write timeout covers a
// whole response, so the stream moves the write deadline forward before
// every flush and only a stalled client is cut off.
func (h *Handler) HomeEvents(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	encode := c.App().Config().JSONEncoder
	conn := c.Context().Conn()
	writeWindow := 2 * h.keepAlive
	if timeout := c.App().Config().WriteTimeout; timeout > writeWindow {
		writeWindow = timeout
	}
	updates, unsubscribe := h.home.Subscribe()
	lang := h.home.Language()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()
		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()

		for {
			select {
			case state, ok := <-updates:
				if !ok {
					return
				}
				data, err := encode(BuildHomeView(state, h.now(), lang))
				if err != nil {
					h.logger.Error("Failed to encode home view", zap.Error(err))
					return
				}
				fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
			case <-ticker.C:
				fmt.Fprint(w, ": ping\n\n")
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWindow)); err != nil {
				h.logger.Debug("Event stream closed", zap.Error(err))
				return
			}
			if err := w.Flush(); err != nil {
				h.logger.Debug("Event stream closed", zap.Error(err))
				return
			}
		}
	}))
	return nil
}

type locationRequest struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	CityName string   `json:"city_name"`
}

// PostLocation handles POST /api/v1/home/location
func (h *Handler) PostLocation(c *fiber.Ctx) error {
	if h.feed == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Location feed is not configured")
	}

	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid location body",
		})
	}
	if req.Lat == nil || req.Lon == nil ||
		*req.Lat < -90 || *req.Lat > 90 || *req.Lon < -180 || *req.Lon > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lat must be within [-90, 90] and lon within [-180, 180]",
		})
	}

	loc := models.LocationData{Latitude: *req.Lat, Longitude: *req.Lon, CityName: req.CityName}
	h.feed.Publish(loc)
	return c.Status(fiber.StatusAccepted).JSON(loc)
}

// PostLocate handles POST /api/v1/home/locate
func (h *Handler) PostLocate(c *fiber.Ctx) error {
	err := h.home.ResolveCurrentLocation(c.UserContext())
	return h.respondHome(c, err)
}

// PostRefresh handles POST /api/v1/home/refresh
func (h *Handler) PostRefresh(c *fiber.Ctx) error {
	err := h.home.ManualRefresh(c.UserContext())
	return h.respondHome(c, err)
}

// PostAutoRefresh handles POST /api/v1/home/auto-refresh
func (h *Handler) PostAutoRefresh(c *fiber.Ctx) error {
	enabled := h.home.ToggleAutoRefresh()
	return c.JSON(fiber.Map{
		"auto_refresh_enabled": enabled,
	})
}

// PostHomeRetry handles POST /api/v1/home/retry
func (h *Handler) PostHomeRetry(c *fiber.Ctx) error {
	err := h.home.Retry(c.UserContext())
	return h.respondHome(c, err)
}

// DeleteHomeError handles DELETE /api/v1/home/error
func (h *Handler) DeleteHomeError(c *fiber.Ctx) error {
	h.home.ClearError()
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSearch handles GET /api/v1/search
func (h *Handler) GetSearch(c *fiber.Ctx) error {
	// The controller keeps the city for Retry, so it must not alias the
	// request buffer.
	city := utils.CopyString(c.Query("city"))
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "City parameter is required",
		})
	}

	h.logger.Info("Searching weather", zap.String("city", city))
	err := h.search.FetchByCity(c.UserContext(), city)
	return h.respondSearch(c, err)
}

// PostSearchRetry handles POST /api/v1/search/retry
func (h *Handler) PostSearchRetry(c *fiber.Ctx) error {
	err := h.search.Retry(c.UserContext())
	return h.respondSearch(c, err)
}

// GetCurrentWeather handles GET /api/v1/weather/current
func (h *Handler) GetCurrentWeather(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id parameter must be a positive city id",
		})
	}

	weather, err := h.lookup.CurrentWeatherByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("Failed to get current weather",
			zap.Int("city_id", id),
			zap.Error(err))

		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error":   "Failed to fetch weather data",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"weather": weather,
		"current": currentOf(weather),
	})
}

type uvForecastEntry struct {
	Date time.Time `json:"date"`
	models.UVIndexData
}

// GetUVForecast handles GET /api/v1/uv/forecast
func (h *Handler) GetUVForecast(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lat and lon parameters are required",
		})
	}
	count := c.QueryInt("cnt", client.DefaultUVForecastCount)

	readings, err := h.lookup.UVIndexForecast(c.UserContext(), lat, lon, count)
	if err != nil {
		h.logger.Error("Failed to get UV forecast",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))

		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error":   "Failed to fetch UV forecast",
			"details": err.Error(),
		})
	}

	lang := h.lookup.Language()
	entries := make([]uvForecastEntry, 0, len(readings))
	for _, r := range readings {
		entries = append(entries, uvForecastEntry{
			Date:        time.Unix(r.Date, 0).UTC(),
			UVIndexData: display.NewUVIndex(r.Value, lang),
		})
	}
	return c.JSON(fiber.Map{
		"lat":      lat,
		"lon":      lon,
		"forecast": entries,
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status":      "healthy",
		"timestamp":   h.now(),
		"uptime":      time.Since(startTime).String(),
		"language":    h.home.Language().String(),
		"last_update": h.home.State().LastUpdateTime,
	}
	if h.scheduler != nil {
		health["scheduler"] = h.scheduler.GetStatus()
	}
	return c.JSON(health)
}

var startTime = time.Now()
