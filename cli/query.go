package cli

import (
	"context"
	"fmt"

	"weather-cli/apperr"
	"weather-cli/config"
	"weather-cli/converter"
	"weather-cli/datasource"
)

// Query fetches the forecast for the configured location and renders the
// earliest entry as "{icon}{temp}{unit} {Description}".
func Query(ctx context.Context, cfg *config.Config, src datasource.ForecastSource) (string, error) {
	if cfg.APIKey == "" {
		return "", apperr.Validation(fmt.Sprintf("Set the api key with \"%s key $key\"", config.AppName))
	}
	if cfg.LocationName == "" {
		return "", apperr.Validation(fmt.Sprintf("Set the location with \"%s location $location\"", config.AppName))
	}

	forecast, err := src.FetchForecast(ctx, cfg.LocationName)
	if err != nil {
		return "", err
	}

	entry, cond, err := forecast.First()
	if err != nil {
		return "", err
	}

	temp, unit := converter.ConvertTemperature(*entry.Main.Temp, cfg.Format())
	return fmt.Sprintf("%s%s%s %s",
		cfg.Icon(cond.Icon),
		converter.FormatTemperature(temp),
		unit,
		converter.ToTitlecase(cond.Description),
	), nil
}
