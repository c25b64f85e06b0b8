// Package weather maintains a cached forecast snapshot for the configured
// location. The scheduler refreshes it in the background; requests never
// call the provider directly. Without a provider the service keeps serving
// its built-in snapshot.
package weather

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/catalog"
	"github.com/agron-app/agron/internal/domain/models"
	"github.com/agron-app/agron/pkg/clients/openmeteo"
)

// day is one language-neutral forecast entry; the weekday index is resolved
// to a localized name at render time.
type day struct {
	weekday   time.Weekday
	temp      int
	condition models.WeatherCondition
}

type snapshot struct {
	temperature int
	condition   models.WeatherCondition
	humidity    int
	windSpeed   int
	forecast    []day
}

// Service caches the latest snapshot and renders it per language.
type Service struct {
	mu      sync.RWMutex
	client  openmeteo.Client
	current snapshot
	logger  *zap.Logger
}

// New builds the service. A nil client disables refreshes; the built-in
// snapshot is served until a refresh succeeds.
func New(client openmeteo.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		current: builtinSnapshot(),
		logger:  logger,
	}
}

// builtinSnapshot mirrors the application's original demo weather card.
func builtinSnapshot() snapshot {
	return snapshot{
		temperature: 32,
		condition:   models.WeatherPartlyCloudy,
		humidity:    65,
		windSpeed:   12,
		forecast: []day{
			{weekday: time.Sunday, temp: 32, condition: models.WeatherSunny},
			{weekday: time.Monday, temp: 30, condition: models.WeatherCloudy},
			{weekday: time.Tuesday, temp: 28, condition: models.WeatherRainy},
			{weekday: time.Wednesday, temp: 31, condition: models.WeatherSunny},
			{weekday: time.Thursday, temp: 33, condition: models.WeatherSunny},
		},
	}
}

// Refresh fetches a fresh forecast and swaps the cached snapshot. A failure
// leaves the previous snapshot in place.
func (s *Service) Refresh(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	resp, err := s.client.Forecast(ctx)
	if err != nil {
		s.logger.Warn("weather refresh failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	fresh := snapshot{
		temperature: int(resp.Current.Temperature2m + 0.5),
		condition:   conditionForCode(resp.Current.WeatherCode),
		humidity:    resp.Current.RelativeHumidity2m,
		windSpeed:   int(resp.Current.WindSpeed10m + 0.5),
	}

	for i, date := range resp.Daily.Time {
		if i >= len(resp.Daily.WeatherCode) || i >= len(resp.Daily.Temperature2mMax) {
			break
		}
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		fresh.forecast = append(fresh.forecast, day{
			weekday:   parsed.Weekday(),
			temp:      int(resp.Daily.Temperature2mMax[i] + 0.5),
			condition: conditionForCode(resp.Daily.WeatherCode[i]),
		})
	}

	s.mu.Lock()
	s.current = fresh
	s.mu.Unlock()

	s.logger.Info("weather snapshot refreshed",
		zap.Int("temperature", fresh.temperature),
		zap.String("condition", string(fresh.condition)))
	return nil
}

// Current renders the cached snapshot with labels, day names and the
// location resolved to the given language.
func (s *Service) Current(lang models.Language) models.WeatherSnapshot {
	s.mu.RLock()
	snap := s.current
	s.mu.RUnlock()

	out := models.WeatherSnapshot{
		Location:    catalog.LocationName.In(lang),
		Temperature: snap.temperature,
		Condition:   snap.condition,
		Humidity:    snap.humidity,
		WindSpeed:   snap.windSpeed,
		Forecast:    make([]models.ForecastDay, 0, len(snap.forecast)),
		Labels:      catalog.WeatherLabelsFor(lang),
	}

	names, ok := catalog.DayNames[lang]
	if !ok {
		names = catalog.DayNames[models.LangEnglish]
	}
	for _, d := range snap.forecast {
		out.Forecast = append(out.Forecast, models.ForecastDay{
			Day:       names[int(d.weekday)%len(names)],
			Temp:      d.temp,
			Condition: d.condition,
		})
	}
	return out
}

// conditionForCode collapses WMO weather codes into the four conditions the
// UI knows how to draw.
func conditionForCode(code int) models.WeatherCondition {
	switch {
	case code == 0:
		return models.WeatherSunny
	case code == 1 || code == 2:
		return models.WeatherPartlyCloudy
	case code == 3 || code == 45 || code == 48:
		return models.WeatherCloudy
	case code >= 51:
		return models.WeatherRainy
	}
	return models.WeatherPartlyCloudy
}
