package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"weather-cli/apperr"
)

// DefaultBaseURL is the OpenWeatherMap API root the forecast endpoint hangs off
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Env holds process settings taken from the environment (and .env)
type Env struct {
	ConfigDir string
	LogLevel  slog.Level
	LogFormat string
	BaseURL   string
	RateLimit float64 // requests per second, 0 disables limiting
}

// LoadEnv reads WEATHER_CLI_* variables, applying defaults for unset ones
func LoadEnv() (Env, error) {
	dir := strings.TrimSpace(os.Getenv("WEATHER_CLI_CONFIG_DIR"))
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return Env{}, err
		}
	}

	levelStr := strings.TrimSpace(os.Getenv("WEATHER_CLI_LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "warn"
	}
	level, err := parseLogLevel(levelStr)
	if err != nil {
		return Env{}, err
	}

	format := strings.ToLower(strings.TrimSpace(os.Getenv("WEATHER_CLI_LOG_FORMAT")))
	switch format {
	case "":
		format = "text"
	case "text", "json":
	default:
		return Env{}, apperr.Validation(fmt.Sprintf("invalid WEATHER_CLI_LOG_FORMAT %q (allowed: text, json)", format))
	}

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("WEATHER_CLI_BASE_URL")), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rateLimit := 1.0
	if s := strings.TrimSpace(os.Getenv("WEATHER_CLI_RATE_LIMIT")); s != "" {
		rateLimit, err = strconv.ParseFloat(s, 64)
		if err != nil || rateLimit < 0 {
			return Env{}, apperr.Validation(fmt.Sprintf("invalid WEATHER_CLI_RATE_LIMIT %q (want a non-negative number)", s))
		}
	}

	return Env{
		ConfigDir: dir,
		LogLevel:  level,
		LogFormat: format,
		BaseURL:   baseURL,
		RateLimit: rateLimit,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, apperr.Validation(fmt.Sprintf("invalid WEATHER_CLI_LOG_LEVEL %q (allowed: debug, info, warn, error)", s))
	}
}
