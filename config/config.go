package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"weather-cli/apperr"
	"weather-cli/converter"
)

// AppName names the per-user configuration subdirectory and the binary
const AppName = "weather-cli"

// FileName is the configuration file inside the configuration directory
const FileName = "config.json"

// Config represents the persisted user settings
type Config struct {
	APIKey            string            `json:"api_key"`
	LocationName      string            `json:"location_name"`
	TemperatureFormat string            `json:"temperature_format"`
	ConditionIcons    map[string]string `json:"condition_icons"`

	path string
}

// Default creates the configuration written on first run
func Default() *Config {
	return &Config{
		TemperatureFormat: converter.Celsius.String(),
		ConditionIcons:    DefaultIcons(),
	}
}

// DefaultDir returns the platform config directory plus the application subdirectory
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", apperr.IO("failed to find config directory", err)
	}
	return filepath.Join(dir, AppName), nil
}

// ReadOrDefault loads config.json from dir, creating dir and a default
// configuration file when none exists yet.
func ReadOrDefault(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.IO("failed to create config directory", err)
	}
	path := filepath.Join(dir, FileName)

	cfg, err := read(path)
	if err == nil {
		slog.Debug("loaded config", "path", path)
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	cfg.path = path
	if err := cfg.Write(); err != nil {
		return nil, err
	}
	slog.Debug("created default config", "path", path)
	return cfg, nil
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, apperr.IO("failed to read config", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, apperr.Parse("failed to parse config", err)
	}
	// Files written by hand may omit keys; fill them so the next write is complete.
	if cfg.ConditionIcons == nil {
		cfg.ConditionIcons = DefaultIcons()
	}
	if cfg.TemperatureFormat == "" {
		cfg.TemperatureFormat = converter.Celsius.String()
	}
	cfg.path = path
	return &cfg, nil
}

// Path returns the file this configuration is persisted to
func (c *Config) Path() string {
	return c.path
}

// Write overwrites the configuration file with the pretty-printed configuration
func (c *Config) Write() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return apperr.Parse("failed to serialize config", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return apperr.IO("failed to write config", err)
	}
	slog.Debug("wrote config", "path", c.path)
	return nil
}

// SetAPIKey stores the OpenWeatherMap API key and persists the configuration
func (c *Config) SetAPIKey(apiKey string) error {
	c.APIKey = apiKey
	return c.Write()
}

// SetLocationName stores the location query and persists the configuration
func (c *Config) SetLocationName(locationName string) error {
	c.LocationName = locationName
	return c.Write()
}

// SetTemperatureFormat stores the unit name as given. Unknown names are
// accepted here and read back as celsius.
func (c *Config) SetTemperatureFormat(format string) error {
	c.TemperatureFormat = format
	return c.Write()
}

// Icon returns the glyph for an OpenWeatherMap icon code, or "" when unmapped
func (c *Config) Icon(code string) string {
	return c.ConditionIcons[code]
}

// Format resolves the stored temperature format, defaulting to celsius
func (c *Config) Format() converter.TemperatureFormat {
	switch c.TemperatureFormat {
	case "fahrenheit":
		return converter.Fahrenheit
	case "kelvin":
		return converter.Kelvin
	default:
		return converter.Celsius
	}
}
