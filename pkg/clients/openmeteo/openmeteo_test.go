package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agron-app/agron/internal/config"
)

func TestForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "17.385", q.Get("latitude"))
		assert.Equal(t, "78.4867", q.Get("longitude"))
		assert.Equal(t, "5", q.Get("forecast_days"))
		assert.Contains(t, q.Get("current"), "weather_code")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {"temperature_2m": 31.4, "relative_humidity_2m": 70, "wind_speed_10m": 10.2, "weather_code": 2},
			"daily": {"time": ["2026-08-30"], "weather_code": [61], "temperature_2m_max": [29.5]}
		}`))
	}))
	defer srv.Close()

	client := NewClient(config.WeatherConfig{BaseURL: srv.URL, Latitude: 17.385, Longitude: 78.4867})
	resp, err := client.Forecast(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 31.4, resp.Current.Temperature2m, 0.0001)
	assert.Equal(t, 70, resp.Current.RelativeHumidity2m)
	assert.Equal(t, 2, resp.Current.WeatherCode)
	require.Len(t, resp.Daily.Time, 1)
	assert.Equal(t, []int{61}, resp.Daily.WeatherCode)
}

func TestForecastUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"reason":"invalid coordinates"}`))
	}))
	defer srv.Close()

	client := NewClient(config.WeatherConfig{BaseURL: srv.URL})
	_, err := client.Forecast(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=400")
}
