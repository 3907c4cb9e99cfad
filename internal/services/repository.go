package services

import (
	"context"

	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/models"
	"github.com/kristevi/ourweather/pkg/client"
)

// WeatherAPI is the upstream surface the repository forwards to.
type WeatherAPI interface {
	CurrentWeatherByCity(ctx context.Context, city string, p client.Params) (*models.CurrentWeatherResponse, error)
	CurrentWeatherByCoords(ctx context.Context, lat, lon float64, p client.Params) (*models.CurrentWeatherResponse, error)
	CurrentWeatherByID(ctx context.Context, cityID int, p client.Params) (*models.CurrentWeatherResponse, error)
	ForecastByCity(ctx context.Context, city string, p client.Params) (*models.WeatherForecastResponse, error)
	ForecastByCoords(ctx context.Context, lat, lon float64, p client.Params) (*models.WeatherForecastResponse, error)
	UVIndex(ctx context.Context, lat, lon float64, apiKey string) (*models.UVIndexResponse, error)
	UVIndexForecast(ctx context.Context, lat, lon float64, apiKey string, count int) ([]models.UVIndexResponse, error)
}

// Repository fills in the API key, unit system and language of every call.
type Repository struct {
	api    WeatherAPI
	apiKey string
	lang   locale.Language
}

func NewRepository(api WeatherAPI, apiKey string, lang locale.Language) *Repository {
	return &Repository{
		api:    api,
		apiKey: apiKey,
		lang:   lang,
	}
}

func (r *Repository) Language() locale.Language {
	return r.lang
}

func (r *Repository) params() client.Params {
	return client.Params{
		APIKey: r.apiKey,
		Units:  client.MetricUnits,
		Lang:   r.lang.Code(),
	}
}

func (r *Repository) CurrentWeather(ctx context.Context, city string) (*models.CurrentWeatherResponse, error) {
	return r.api.CurrentWeatherByCity(ctx, city, r.params())
}

func (r *Repository) CurrentWeatherByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeatherResponse, error) {
	return r.api.CurrentWeatherByCoords(ctx, lat, lon, r.params())
}

func (r *Repository) CurrentWeatherByID(ctx context.Context, cityID int) (*models.CurrentWeatherResponse, error) {
	return r.api.CurrentWeatherByID(ctx, cityID, r.params())
}

func (r *Repository) Forecast(ctx context.Context, city string) (*models.WeatherForecastResponse, error) {
	return r.api.ForecastByCity(ctx, city, r.params())
}

func (r *Repository) ForecastByCoords(ctx context.Context, lat, lon float64) (*models.WeatherForecastResponse, error) {
	return r.api.ForecastByCoords(ctx, lat, lon, r.params())
}

// UV endpoints take no language or units.
func (r *Repository) UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndexResponse, error) {
	return r.api.UVIndex(ctx, lat, lon, r.apiKey)
}

// UVIndexForecast returns count daily readings; count <= 0 means
// client.DefaultUVForecastCount.
func (r *Repository) UVIndexForecast(ctx context.Context, lat, lon float64, count int) ([]models.UVIndexResponse, error) {
	if count <= 0 {
		count = client.DefaultUVForecastCount
	}
	return r.api.UVIndexForecast(ctx, lat, lon, r.apiKey, count)
}
