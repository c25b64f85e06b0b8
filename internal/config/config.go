package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog source selectors.
const (
	CatalogSourceStatic  = "static"
	CatalogSourceMongoDB = "mongodb"
	CatalogSourceSheets  = "sheets"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Speech    SpeechConfig
	Assistant AssistantConfig
	Weather   WeatherConfig
	Catalog   CatalogConfig
	Sessions  SessionConfig
	MongoDB   MongoDBConfig
	Sheets    SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// SpeechConfig contains credentials and options for the ElevenLabs
// text-to-speech API. An empty APIKey disables the speech endpoint with a
// client-visible error rather than failing startup.
type SpeechConfig struct {
	APIKey  string
	BaseURL string
}

// AssistantConfig holds settings for the OpenAI-compatible chat gateway
// behind the farmer assistant. An empty APIKey disables the chat endpoint.
type AssistantConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// WeatherConfig holds the forecast location and refresh schedule. When
// Enabled is false the service serves its built-in snapshot.
type WeatherConfig struct {
	Enabled     bool
	BaseURL     string
	Latitude    float64
	Longitude   float64
	RefreshCron string
}

// CatalogConfig selects where the scheme catalog is loaded from at startup.
type CatalogConfig struct {
	Source string
}

// SessionConfig controls the in-memory session store.
type SessionConfig struct {
	TTL       time.Duration
	SweepCron string
}

// MongoDBConfig holds settings for the MongoDB catalog source.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration for the content-team spreadsheet
// catalog source.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	SchemeRange     string
	DeadlineRange   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	ttlMinutes, err := strconv.Atoi(getenvWithDefault("SESSION_TTL_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must be an integer: %w", err)
	}

	maxTokens, err := strconv.Atoi(getenvWithDefault("AI_GATEWAY_MAX_TOKENS", "500"))
	if err != nil {
		return nil, fmt.Errorf("AI_GATEWAY_MAX_TOKENS must be an integer: %w", err)
	}

	lat, err := strconv.ParseFloat(getenvWithDefault("WEATHER_LATITUDE", "17.385"), 64)
	if err != nil {
		return nil, fmt.Errorf("WEATHER_LATITUDE must be a number: %w", err)
	}
	lon, err := strconv.ParseFloat(getenvWithDefault("WEATHER_LONGITUDE", "78.4867"), 64)
	if err != nil {
		return nil, fmt.Errorf("WEATHER_LONGITUDE must be a number: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Speech: SpeechConfig{
			APIKey:  os.Getenv("ELEVENLABS_API_KEY"),
			BaseURL: getenvWithDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"),
		},
		Assistant: AssistantConfig{
			APIKey:    os.Getenv("AI_GATEWAY_API_KEY"),
			BaseURL:   getenvWithDefault("AI_GATEWAY_BASE_URL", "https://ai.gateway.lovable.dev/v1"),
			Model:     getenvWithDefault("AI_GATEWAY_MODEL", "google/gemini-2.5-flash"),
			MaxTokens: maxTokens,
		},
		Weather: WeatherConfig{
			Enabled:     getenvWithDefault("WEATHER_ENABLED", "false") == "true",
			BaseURL:     getenvWithDefault("WEATHER_BASE_URL", "https://api.open-meteo.com"),
			Latitude:    lat,
			Longitude:   lon,
			RefreshCron: getenvWithDefault("WEATHER_REFRESH_CRON", "*/30 * * * *"),
		},
		Catalog: CatalogConfig{
			Source: getenvWithDefault("CATALOG_SOURCE", CatalogSourceStatic),
		},
		Sessions: SessionConfig{
			TTL:       time.Duration(ttlMinutes) * time.Minute,
			SweepCron: getenvWithDefault("SESSION_SWEEP_CRON", "*/15 * * * *"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "agron"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_CATALOG_ID"),
			SchemeRange:     getenvWithDefault("GOOGLE_SHEET_SCHEME_RANGE", "Schemes!A2:S"),
			DeadlineRange:   getenvWithDefault("GOOGLE_SHEET_DEADLINE_RANGE", "Deadlines!A2:I"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
// Provider credentials are deliberately not required: a missing key degrades
// the corresponding endpoint to a client-visible error instead of blocking
// startup.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourceMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided when CATALOG_SOURCE=mongodb")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must not be empty")
		}
	case CatalogSourceSheets:
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when CATALOG_SOURCE=sheets")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_CATALOG_ID must be provided when CATALOG_SOURCE=sheets")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	if c.Assistant.MaxTokens <= 0 {
		return errors.New("AI_GATEWAY_MAX_TOKENS must be positive")
	}

	if c.Sessions.TTL <= 0 {
		return errors.New("SESSION_TTL_MINUTES must be positive")
	}

	if c.Weather.Enabled {
		if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
			return errors.New("WEATHER_LATITUDE out of range")
		}
		if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
			return errors.New("WEATHER_LONGITUDE out of range")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
