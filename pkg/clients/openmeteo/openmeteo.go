package openmeteo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agron-app/agron/internal/config"
)

// Client exposes the Open-Meteo forecast lookup used by the weather service.
type Client interface {
	Forecast(ctx context.Context) (*ForecastResponse, error)
}

// APIClient is a resty-backed implementation of Client. Open-Meteo requires
// no credential.
type APIClient struct {
	httpClient *resty.Client
	latitude   float64
	longitude  float64
}

// NewClient builds an Open-Meteo client for the configured coordinates.
func NewClient(cfg config.WeatherConfig) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		latitude:   cfg.Latitude,
		longitude:  cfg.Longitude,
	}
}

// ForecastResponse mirrors the fields of the Open-Meteo forecast payload the
// application reads.
type ForecastResponse struct {
	Current struct {
		Temperature2m      float64 `json:"temperature_2m"`
		RelativeHumidity2m int     `json:"relative_humidity_2m"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
		WeatherCode        int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

// Forecast fetches current conditions plus a five-day daily outlook.
func (c *APIClient) Forecast(ctx context.Context) (*ForecastResponse, error) {
	result := new(ForecastResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":      strconv.FormatFloat(c.latitude, 'f', -1, 64),
			"longitude":     strconv.FormatFloat(c.longitude, 'f', -1, 64),
			"current":       "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code",
			"daily":         "weather_code,temperature_2m_max",
			"forecast_days": "5",
			"timezone":      "auto",
		}).
		SetResult(result).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("open-meteo api call: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("open-meteo api error: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	return result, nil
}
