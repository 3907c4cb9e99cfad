package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/pkg/client"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "key")
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "en_US.UTF-8")
	t.Setenv("DEFAULT_LAT", "")
	t.Setenv("DEFAULT_LON", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, client.DefaultBaseURL, cfg.WeatherAPI.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.WeatherAPI.Timeout)
	assert.Equal(t, locale.English, cfg.WeatherAPI.Language)
	assert.Equal(t, 10*time.Minute, cfg.Refresh.Interval)
	assert.True(t, cfg.Refresh.Enabled)
	assert.Equal(t, 3, cfg.CircuitBreaker.Threshold)
	assert.Equal(t, 30*time.Second, cfg.CircuitBreaker.Timeout)
	assert.True(t, cfg.Location.Permission)
	assert.True(t, cfg.Location.Enabled)
	assert.False(t, cfg.Location.HasDefault)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "key")
	t.Setenv("LANGUAGE", "id")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("AUTO_REFRESH", "false")
	t.Setenv("LOCATION_PERMISSION", "false")
	t.Setenv("DEFAULT_LAT", "-6.2088")
	t.Setenv("DEFAULT_LON", "106.8456")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, locale.Indonesian, cfg.WeatherAPI.Language)
	assert.Equal(t, 5*time.Minute, cfg.Refresh.Interval)
	assert.False(t, cfg.Refresh.Enabled)
	assert.False(t, cfg.Location.Permission)
	require.True(t, cfg.Location.HasDefault)
	assert.Equal(t, -6.2088, cfg.Location.DefaultLat)
	assert.Equal(t, 106.8456, cfg.Location.DefaultLon)
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadConfigRejectsSubSecondInterval(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "key")
	t.Setenv("REFRESH_INTERVAL", "bogus")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.Refresh.Interval)
}
