package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/models"
	"github.com/kristevi/ourweather/pkg/client"
)

type recordingAPI struct {
	params  []client.Params
	apiKeys []string
	count   int
}

func (r *recordingAPI) CurrentWeatherByCity(_ context.Context, city string, p client.Params) (*models.CurrentWeatherResponse, error) {
	r.params = append(r.params, p)
	return &models.CurrentWeatherResponse{Name: city}, nil
}

func (r *recordingAPI) CurrentWeatherByCoords(_ context.Context, _, _ float64, p client.Params) (*models.CurrentWeatherResponse, error) {
	r.params = append(r.params, p)
	return &models.CurrentWeatherResponse{}, nil
}

func (r *recordingAPI) CurrentWeatherByID(_ context.Context, id int, p client.Params) (*models.CurrentWeatherResponse, error) {
	r.params = append(r.params, p)
	return &models.CurrentWeatherResponse{ID: id}, nil
}

func (r *recordingAPI) ForecastByCity(_ context.Context, _ string, p client.Params) (*models.WeatherForecastResponse, error) {
	r.params = append(r.params, p)
	return &models.WeatherForecastResponse{}, nil
}

func (r *recordingAPI) ForecastByCoords(_ context.Context, _, _ float64, p client.Params) (*models.WeatherForecastResponse, error) {
	r.params = append(r.params, p)
	return &models.WeatherForecastResponse{}, nil
}

func (r *recordingAPI) UVIndex(_ context.Context, _, _ float64, apiKey string) (*models.UVIndexResponse, error) {
	r.apiKeys = append(r.apiKeys, apiKey)
	return &models.UVIndexResponse{Value: 3}, nil
}

func (r *recordingAPI) UVIndexForecast(_ context.Context, _, _ float64, apiKey string, count int) ([]models.UVIndexResponse, error) {
	r.apiKeys = append(r.apiKeys, apiKey)
	r.count = count
	return make([]models.UVIndexResponse, count), nil
}

func TestRepositoryFillsParams(t *testing.T) {
	api := &recordingAPI{}
	repo := NewRepository(api, "secret", locale.Indonesian)
	ctx := context.Background()

	_, err := repo.CurrentWeather(ctx, "Jakarta")
	require.NoError(t, err)
	_, err = repo.CurrentWeatherByCoords(ctx, 1, 2)
	require.NoError(t, err)
	_, err = repo.Forecast(ctx, "Jakarta")
	require.NoError(t, err)
	_, err = repo.ForecastByCoords(ctx, 1, 2)
	require.NoError(t, err)
	current, err := repo.CurrentWeatherByID(ctx, 1642911)
	require.NoError(t, err)
	assert.Equal(t, 1642911, current.ID)

	require.Len(t, api.params, 5)
	for _, p := range api.params {
		assert.Equal(t, client.Params{APIKey: "secret", Units: "metric", Lang: "id"}, p)
	}
	assert.Equal(t, locale.Indonesian, repo.Language())
}

func TestRepositoryUVCalls(t *testing.T) {
	api := &recordingAPI{}
	repo := NewRepository(api, "secret", locale.English)

	uv, err := repo.UVIndex(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, uv.Value)

	forecast, err := repo.UVIndexForecast(context.Background(), 1, 2, 0)
	require.NoError(t, err)
	assert.Len(t, forecast, client.DefaultUVForecastCount)

	forecast, err = repo.UVIndexForecast(context.Background(), 1, 2, 3)
	require.NoError(t, err)
	assert.Len(t, forecast, 3)
	assert.Equal(t, []string{"secret", "secret", "secret"}, api.apiKeys)
}

var _ Source = (*Repository)(nil)
