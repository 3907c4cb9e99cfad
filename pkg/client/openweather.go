package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kristevi/ourweather/internal/models"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/"
	MetricUnits    = "metric"

	DefaultUVForecastCount = 8
)

// Params are the query parameters shared by the weather and forecast calls.
type Params struct {
	APIKey string
	Units  string
	Lang   string
}

type OpenWeatherClient struct {
	*BaseClient
	baseURL string
}

func NewOpenWeatherClient(baseURL string, config ClientConfig, logger *zap.Logger) *OpenWeatherClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenWeatherClient{
		BaseClient: NewBaseClient("openweather", config, logger),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

func (c *OpenWeatherClient) endpoint(path string) string {
	return c.baseURL + "/" + path
}

func (p Params) values() url.Values {
	units := p.Units
	if units == "" {
		units = MetricUnits
	}
	v := url.Values{
		"appid": {p.APIKey},
		"units": {units},
	}
	if p.Lang != "" {
		v.Set("lang", p.Lang)
	}
	return v
}

func coords(v url.Values, lat, lon float64) url.Values {
	v.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	v.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return v
}

// GET weather?q=
func (c *OpenWeatherClient) CurrentWeatherByCity(ctx context.Context, city string, p Params) (*models.CurrentWeatherResponse, error) {
	v := p.values()
	v.Set("q", city)

	var out models.CurrentWeatherResponse
	if err := c.GetJSON(ctx, c.endpoint("weather"), v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET weather?lat=&lon=
func (c *OpenWeatherClient) CurrentWeatherByCoords(ctx context.Context, lat, lon float64, p Params) (*models.CurrentWeatherResponse, error) {
	var out models.CurrentWeatherResponse
	if err := c.GetJSON(ctx, c.endpoint("weather"), coords(p.values(), lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET weather?id=
func (c *OpenWeatherClient) CurrentWeatherByID(ctx context.Context, cityID int, p Params) (*models.CurrentWeatherResponse, error) {
	v := p.values()
	v.Set("id", strconv.Itoa(cityID))

	var out models.CurrentWeatherResponse
	if err := c.GetJSON(ctx, c.endpoint("weather"), v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET forecast?q=
func (c *OpenWeatherClient) ForecastByCity(ctx context.Context, city string, p Params) (*models.WeatherForecastResponse, error) {
	v := p.values()
	v.Set("q", city)

	var out models.WeatherForecastResponse
	if err := c.GetJSON(ctx, c.endpoint("forecast"), v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET forecast?lat=&lon=
func (c *OpenWeatherClient) ForecastByCoords(ctx context.Context, lat, lon float64, p Params) (*models.WeatherForecastResponse, error) {
	var out models.WeatherForecastResponse
	if err := c.GetJSON(ctx, c.endpoint("forecast"), coords(p.values(), lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET uvi?lat=&lon=
func (c *OpenWeatherClient) UVIndex(ctx context.Context, lat, lon float64, apiKey string) (*models.UVIndexResponse, error) {
	v := coords(url.Values{"appid": {apiKey}}, lat, lon)

	var out models.UVIndexResponse
	if err := c.GetJSON(ctx, c.endpoint("uvi"), v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET uvi/forecast?lat=&lon=&cnt=
func (c *OpenWeatherClient) UVIndexForecast(ctx context.Context, lat, lon float64, apiKey string, count int) ([]models.UVIndexResponse, error) {
	if count <= 0 {
		count = DefaultUVForecastCount
	}
	v := coords(url.Values{"appid": {apiKey}}, lat, lon)
	v.Set("cnt", strconv.Itoa(count))

	var out []models.UVIndexResponse
	if err := c.GetJSON(ctx, c.endpoint("uvi/forecast"), v, &out); err != nil {
		return nil, err
	}
	return out, nil
}
