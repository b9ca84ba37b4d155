package datasource

import (
	"context"

	"weather-cli/models"
)

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the forecast for a free-text location query
	FetchForecast(ctx context.Context, location string) (*models.ForecastResponse, error)

	// Name returns the source's name
	Name() string
}
