package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"weather-cli/apperr"
	"weather-cli/models"
)

// OpenWeatherMapProvider fetches the 5 day / 3 hour forecast from OpenWeatherMap
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Ensure OpenWeatherMapProvider implements ForecastSource
var _ ForecastSource = (*OpenWeatherMapProvider)(nil)

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
// baseURL is the API root, e.g. https://api.openweathermap.org/data/2.5
func NewOpenWeatherMapProvider(apiKey, baseURL string) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// ForecastURL builds the forecast request URL for a location query
func ForecastURL(baseURL, location, apiKey string) string {
	return fmt.Sprintf("%s/forecast?q=%s&appid=%s",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(location), url.QueryEscape(apiKey))
}

// FetchForecast fetches the forecast for a location
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, location string) (*models.ForecastResponse, error) {
	slog.Debug("requesting forecast", "provider", p.Name(), "location", location, "endpoint", p.baseURL+"/forecast")
	return p.FetchURL(ctx, ForecastURL(p.baseURL, location, p.apiKey))
}

// FetchURL performs a single GET against a fully formed forecast URL and
// decodes the body. There is no retry.
func (p *OpenWeatherMapProvider) FetchURL(ctx context.Context, rawURL string) (*models.ForecastResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperr.Connection("failed to create request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Connection("connection error", redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Parse("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var forecast models.ForecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, apperr.Parse("failed to parse forecast response", err)
	}

	slog.Debug("received forecast", "provider", p.Name(), "entries", len(forecast.List))
	return &forecast, nil
}

// apiError turns a non-200 reply into an error, using the provider's own
// message when the body is the usual {"cod": ..., "message": "..."} shape.
func apiError(status int, body []byte) error {
	var reply struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &reply); err == nil && reply.Message != "" {
		return apperr.API(fmt.Sprintf("API error (status %d): %s", status, reply.Message))
	}
	return apperr.API(fmt.Sprintf("API error (status %d)", status))
}

// redact strips the request URL, which carries the API key, from transport errors
func redact(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return uerr.Err
	}
	return err
}
