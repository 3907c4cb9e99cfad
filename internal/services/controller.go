package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kristevi/ourweather/internal/display"
	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/location"
	"github.com/kristevi/ourweather/internal/metrics"
	"github.com/kristevi/ourweather/internal/models"
)

var ErrNothingToRetry = errors.New("no previous request to retry")

// Source is what the controller needs from the repository.
type Source interface {
	Language() locale.Language
	CurrentWeather(ctx context.Context, city string) (*models.CurrentWeatherResponse, error)
	CurrentWeatherByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeatherResponse, error)
	Forecast(ctx context.Context, city string) (*models.WeatherForecastResponse, error)
	ForecastByCoords(ctx context.Context, lat, lon float64) (*models.WeatherForecastResponse, error)
	UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndexResponse, error)
}

type trigger string

const (
	triggerUser     trigger = "user"
	triggerLocation trigger = "location"
	triggerAuto     trigger = "auto"
)

// Controller owns the weather state of one screen session. User requests
// and the auto-refresh timer may overlap; whichever fetch completes last
// wins, and a fetch publishes its weather, forecast and UV index together.
type Controller struct {
	source  Source
	locator location.Provider
	store   *Store
	logger  *zap.Logger
	msgs    locale.Messages
	now     func() time.Time

	scope  context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	inflight    int
	lastRequest func(ctx context.Context) error
	stopWatch   context.CancelFunc
}

type Option func(*Controller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithAutoRefresh sets the initial auto-refresh flag (default on).
func WithAutoRefresh(enabled bool) Option {
	return func(c *Controller) {
		c.store.Update(func(s *State) { s.AutoRefreshEnabled = enabled })
	}
}

// NewController creates a controller whose background work ends with
// parent or Close. locator may be nil for screens that never locate.
func NewController(parent context.Context, source Source, locator location.Provider, logger *zap.Logger, opts ...Option) *Controller {
	scope, cancel := context.WithCancel(parent)
	c := &Controller{
		source:  source,
		locator: locator,
		store:   NewStore(State{AutoRefreshEnabled: true}),
		logger:  logger,
		msgs:    locale.For(source.Language()),
		now:     time.Now,
		scope:   scope,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Language() locale.Language {
	return c.source.Language()
}

func (c *Controller) State() State {
	return c.store.Snapshot()
}

func (c *Controller) Subscribe() (<-chan State, func()) {
	return c.store.Subscribe()
}

// Close stops the location watcher and any background fetches.
func (c *Controller) Close() {
	c.cancel()
}

// FetchByCity loads current weather, then the forecast, then the UV index at
// the coordinates the current weather reports.
func (c *Controller) FetchByCity(ctx context.Context, city string) error {
	c.remember(func(ctx context.Context) error { return c.FetchByCity(ctx, city) })
	return c.fetchAll(ctx, triggerUser, c.byCity(city))
}

// FetchByCoordinates is FetchByCity for a latitude/longitude pair.
func (c *Controller) FetchByCoordinates(ctx context.Context, lat, lon float64) error {
	c.remember(func(ctx context.Context) error { return c.FetchByCoordinates(ctx, lat, lon) })
	return c.fetchAll(ctx, triggerUser, c.byCoords(lat, lon))
}

// ResolveCurrentLocation checks location preconditions, applies the last
// known position right away, and keeps following fresh positions until the
// controller closes or another resolve supersedes it.
func (c *Controller) ResolveCurrentLocation(ctx context.Context) error {
	c.remember(c.ResolveCurrentLocation)

	if c.locator == nil || !c.locator.HasPermission() {
		c.setError(c.msgs.PermissionRequired)
		return location.ErrPermissionDenied
	}
	if !c.locator.IsEnabled() {
		c.setError(c.msgs.LocationDisabled)
		return location.ErrLocationDisabled
	}
	c.ClearError()

	watchCtx, stop := context.WithCancel(c.scope)
	updates, err := c.locator.Updates(watchCtx)
	if err != nil {
		stop()
		c.setError(fmt.Sprintf("%s: %s", c.msgs.LocationFailed, err.Error()))
		return fmt.Errorf("subscribe to location updates: %w", err)
	}

	c.mu.Lock()
	if c.stopWatch != nil {
		c.stopWatch()
	}
	c.stopWatch = stop
	c.mu.Unlock()

	go c.watch(watchCtx, updates)

	if last, ok := c.locator.LastKnown(); ok {
		return c.handleNewLocation(ctx, last)
	}
	return nil
}

func (c *Controller) watch(ctx context.Context, updates <-chan models.LocationData) {
	for {
		select {
		case <-ctx.Done():
			return
		case loc, ok := <-updates:
			if !ok {
				return
			}
			if err := c.handleNewLocation(ctx, loc); err != nil {
				c.logger.Warn("Fetch for new location failed",
					zap.Float64("lat", loc.Latitude),
					zap.Float64("lon", loc.Longitude),
					zap.Error(err))
			}
		}
	}
}

func (c *Controller) handleNewLocation(ctx context.Context, loc models.LocationData) error {
	c.store.Update(func(s *State) {
		l := loc
		s.CurrentLocation = &l
	})
	c.remember(func(ctx context.Context) error {
		return c.fetchAll(ctx, triggerLocation, c.byCoords(loc.Latitude, loc.Longitude))
	})
	return c.fetchAll(ctx, triggerLocation, c.byCoords(loc.Latitude, loc.Longitude))
}

// AutoRefresh is the timer body: when enabled and a location is known it
// repeats the coordinates fetch without touching the loading or error
// state. The returned error is for logging only.
func (c *Controller) AutoRefresh(ctx context.Context) error {
	state := c.store.Snapshot()
	if !state.AutoRefreshEnabled || state.CurrentLocation == nil {
		return nil
	}
	loc := *state.CurrentLocation
	return c.fetchAll(ctx, triggerAuto, c.byCoords(loc.Latitude, loc.Longitude))
}

// ManualRefresh re-fetches the known location, or locates the device first.
func (c *Controller) ManualRefresh(ctx context.Context) error {
	if loc := c.store.Snapshot().CurrentLocation; loc != nil {
		return c.FetchByCoordinates(ctx, loc.Latitude, loc.Longitude)
	}
	return c.ResolveCurrentLocation(ctx)
}

// Retry re-issues the last user request.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	last := c.lastRequest
	c.mu.Unlock()

	if last == nil {
		return ErrNothingToRetry
	}
	return last(ctx)
}

func (c *Controller) ToggleAutoRefresh() bool {
	state := c.store.Update(func(s *State) {
		s.AutoRefreshEnabled = !s.AutoRefreshEnabled
	})
	c.logger.Info("Auto-refresh toggled", zap.Bool("enabled", state.AutoRefreshEnabled))
	return state.AutoRefreshEnabled
}

func (c *Controller) ClearError() {
	c.store.Update(func(s *State) { s.Error = "" })
}

func (c *Controller) ClearData() {
	c.store.Update(func(s *State) {
		s.CurrentWeather = nil
		s.Forecast = nil
		s.UVIndex = nil
		s.Error = ""
	})
}

type fetchPlan struct {
	current  func(ctx context.Context) (*models.CurrentWeatherResponse, error)
	forecast func(ctx context.Context) (*models.WeatherForecastResponse, error)
	// uvCoords picks the UV coordinates once current weather is known.
	uvCoords func(current *models.CurrentWeatherResponse) (lat, lon float64, ok bool)
	query    zap.Field
}

func (c *Controller) byCity(city string) fetchPlan {
	return fetchPlan{
		current: func(ctx context.Context) (*models.CurrentWeatherResponse, error) {
			return c.source.CurrentWeather(ctx, city)
		},
		forecast: func(ctx context.Context) (*models.WeatherForecastResponse, error) {
			return c.source.Forecast(ctx, city)
		},
		uvCoords: func(current *models.CurrentWeatherResponse) (float64, float64, bool) {
			if current.Coord == nil {
				return 0, 0, false
			}
			return current.Coord.Lat, current.Coord.Lon, true
		},
		query: zap.String("city", city),
	}
}

func (c *Controller) byCoords(lat, lon float64) fetchPlan {
	return fetchPlan{
		current: func(ctx context.Context) (*models.CurrentWeatherResponse, error) {
			return c.source.CurrentWeatherByCoords(ctx, lat, lon)
		},
		forecast: func(ctx context.Context) (*models.WeatherForecastResponse, error) {
			return c.source.ForecastByCoords(ctx, lat, lon)
		},
		uvCoords: func(*models.CurrentWeatherResponse) (float64, float64, bool) {
			return lat, lon, true
		},
		query: zap.Float64s("coords", []float64{lat, lon}),
	}
}

func (c *Controller) fetchAll(ctx context.Context, t trigger, plan fetchPlan) error {
	silent := t == triggerAuto
	if !silent {
		c.begin()
		defer c.end()
	}

	startTime := c.now()

	current, err := plan.current(ctx)
	if err != nil {
		return c.fail(t, plan, fmt.Errorf("fetch current weather: %w", err))
	}

	forecast, err := plan.forecast(ctx)
	if err != nil {
		return c.fail(t, plan, fmt.Errorf("fetch forecast: %w", err))
	}

	var uv *models.UVIndexData
	if lat, lon, ok := plan.uvCoords(current); ok {
		data := c.loadUVIndex(ctx, lat, lon)
		uv = &data
	}

	updated := c.now()
	c.store.Update(func(s *State) {
		s.CurrentWeather = current
		s.Forecast = forecast
		if uv != nil {
			s.UVIndex = uv
		}
		s.LastUpdateTime = &updated
	})

	metrics.Fetches.WithLabelValues(string(t), "success").Inc()
	c.logger.Info("Weather fetch completed",
		zap.String("trigger", string(t)),
		plan.query,
		zap.String("location", current.Name),
		zap.Duration("duration", updated.Sub(startTime)))
	return nil
}

// loadUVIndex never fails: an unavailable reading is shown as 0.
func (c *Controller) loadUVIndex(ctx context.Context, lat, lon float64) models.UVIndexData {
	resp, err := c.source.UVIndex(ctx, lat, lon)
	if err != nil {
		metrics.UVFallbacks.Inc()
		c.logger.Warn("Failed to load UV index",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return display.NewUVIndex(0, c.source.Language())
	}
	return display.NewUVIndex(resp.Value, c.source.Language())
}

func (c *Controller) fail(t trigger, plan fetchPlan, err error) error {
	metrics.Fetches.WithLabelValues(string(t), "failure").Inc()

	if t == triggerAuto {
		c.logger.Warn("Auto-refresh failed", plan.query, zap.Error(err))
		return err
	}

	c.logger.Error("Weather fetch failed",
		zap.String("trigger", string(t)),
		plan.query,
		zap.Error(err))
	c.setError(fmt.Sprintf("%s: %s", c.msgs.ErrorPrefix, errors.Unwrap(err).Error()))
	return err
}

func (c *Controller) setError(msg string) {
	c.store.Update(func(s *State) { s.Error = msg })
}

func (c *Controller) remember(request func(ctx context.Context) error) {
	c.mu.Lock()
	c.lastRequest = request
	c.mu.Unlock()
}

// begin and end keep Loading true while any user fetch is in flight.
func (c *Controller) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight++
	c.store.Update(func(s *State) {
		s.Loading = true
		s.Error = ""
	})
}

func (c *Controller) end() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight--
	loading := c.inflight > 0
	c.store.Update(func(s *State) { s.Loading = loading })
}
