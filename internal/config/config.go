package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/pkg/client"
)

var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		LogLevel     string
	}

	WeatherAPI struct {
		APIKey   string
		BaseURL  string
		Timeout  time.Duration
		Language locale.Language
	}

	Refresh struct {
		Interval time.Duration
		Enabled  bool
	}

	CircuitBreaker struct {
		Threshold int
		Timeout   time.Duration
	}

	// Location describes the device position source.
	Location struct {
		Permission bool
		Enabled    bool
		// HasDefault reports whether DEFAULT_LAT and DEFAULT_LON seed a
		// last known position.
		HasDefault bool
		DefaultLat float64
		DefaultLon float64
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	// Weather API configuration
	cfg.WeatherAPI.APIKey = getEnv("OPENWEATHER_API_KEY", "")
	cfg.WeatherAPI.BaseURL = getEnv("OPENWEATHER_BASE_URL", client.DefaultBaseURL)
	cfg.WeatherAPI.Timeout = parseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if lang := os.Getenv("LANGUAGE"); lang != "" {
		cfg.WeatherAPI.Language = locale.Parse(lang)
	} else {
		cfg.WeatherAPI.Language = locale.Detect()
	}

	// Refresh configuration
	cfg.Refresh.Interval = parseDuration(getEnv("REFRESH_INTERVAL", "10m"))
	cfg.Refresh.Enabled = parseBool(getEnv("AUTO_REFRESH", "true"))

	// Circuit breaker configuration
	cfg.CircuitBreaker.Threshold = parseInt(getEnv("CIRCUIT_BREAKER_THRESHOLD", "3"))
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	// Location configuration
	cfg.Location.Permission = parseBool(getEnv("LOCATION_PERMISSION", "true"))
	cfg.Location.Enabled = parseBool(getEnv("LOCATION_ENABLED", "true"))
	lat, lon := os.Getenv("DEFAULT_LAT"), os.Getenv("DEFAULT_LON")
	if lat != "" && lon != "" {
		cfg.Location.HasDefault = true
		cfg.Location.DefaultLat = parseFloat(lat)
		cfg.Location.DefaultLon = parseFloat(lon)
	}

	if cfg.WeatherAPI.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Refresh.Interval < time.Second {
		cfg.Refresh.Interval = 10 * time.Minute
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("Failed to parse bool", zap.String("value", value), zap.Error(err))
		return false
	}
	return boolValue
}
