package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

const (
	DefaultBaseURL = "https://api.open-meteo.com"
	forecastPath   = "/v1/forecast"
	maxBodyBytes   = 1 << 20
)

var errUnexpectedStatus = errors.New("unexpected status code")

type Client struct {
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	log        ports.Logger
}

var _ ports.WeatherLookup = (*Client)(nil)

// NewClient builds an Open-Meteo client. Calls are never retried; repeated
// failures open the circuit so later lookups fail fast.
func NewClient(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Weather circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		circuit:    cb,
		log:        log,
	}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WeatherCode *int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*model.WeatherReport, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetch(ctx, lat, lon)
	})
	if err != nil {
		return nil, err
	}
	report, ok := result.(*model.WeatherReport)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type", custom_errors.ErrWeatherPayload)
	}
	return report, nil
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (*model.WeatherReport, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	values.Set("current_weather", "true")

	u := fmt.Sprintf("%s%s?%s", c.baseURL, forecastPath, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrWeatherPayload, err)
	}
	if payload.CurrentWeather == nil || payload.CurrentWeather.WeatherCode == nil {
		return nil, fmt.Errorf("%w: missing current_weather.weathercode", custom_errors.ErrWeatherPayload)
	}

	report := &model.WeatherReport{Code: *payload.CurrentWeather.WeatherCode}
	if payload.CurrentWeather.Temperature != nil {
		report.Temp = *payload.CurrentWeather.Temperature
	}

	c.log.Debug("Fetched current weather",
		slog.Float64("lat", lat),
		slog.Float64("lon", lon),
		slog.Int("code", report.Code))
	return report, nil
}
