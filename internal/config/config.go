package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ProvidersLive = "live"
	ProvidersMock = "mock"

	CacheNone     = "none"
	CacheSQLite   = "sqlite"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

// Config holds every environment-driven setting of the server and tools.
type Config struct {
	Port string `mapstructure:"PORT"`

	MapboxToken       string `mapstructure:"MAPBOX_TOKEN"`
	OpenWeatherAPIKey string `mapstructure:"OPENWEATHER_API_KEY"`

	FeaturesPath string `mapstructure:"FEATURES_PATH"`
	StaticDir    string `mapstructure:"STATIC_DIR"`

	MapboxBaseURL      string `mapstructure:"MAPBOX_BASE_URL"`
	NWSBaseURL         string `mapstructure:"NWS_BASE_URL"`
	OpenWeatherBaseURL string `mapstructure:"OPENWEATHER_BASE_URL"`
	NWSUserAgent       string `mapstructure:"NWS_USER_AGENT"`

	EnrichConcurrency int `mapstructure:"ENRICH_CONCURRENCY"`

	DriveCache    string        `mapstructure:"DRIVE_CACHE"`
	SQLitePath    string        `mapstructure:"SQLITE_PATH"`
	DatabaseURL   string        `mapstructure:"DATABASE_URL"`
	RedisURL      string        `mapstructure:"REDIS_URL"`
	DriveCacheTTL time.Duration `mapstructure:"DRIVE_CACHE_TTL"`

	Providers string `mapstructure:"PROVIDERS"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"PORT":                 "8080",
	"MAPBOX_TOKEN":         "",
	"OPENWEATHER_API_KEY":  "",
	"FEATURES_PATH":        "static/hiking.geojson",
	"STATIC_DIR":           "static",
	"MAPBOX_BASE_URL":      "https://api.mapbox.com",
	"NWS_BASE_URL":         "https://api.weather.gov",
	"OPENWEATHER_BASE_URL": "https://api.openweathermap.org",
	"NWS_USER_AGENT":       "hiking-map-service (ops@example.com)",
	"ENRICH_CONCURRENCY":   8,
	"DRIVE_CACHE":          CacheNone,
	"SQLITE_PATH":          "data/cache.db",
	"DATABASE_URL":         "",
	"REDIS_URL":            "redis://localhost:6379/0",
	"DRIVE_CACHE_TTL":      "24h",
	"PROVIDERS":            ProvidersLive,
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
}

// Load reads an optional .env file, then the process environment.
// Environment variables win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Providers = strings.ToLower(strings.TrimSpace(cfg.Providers))
	cfg.DriveCache = strings.ToLower(strings.TrimSpace(cfg.DriveCache))
	return &cfg, nil
}

// Validate reports every missing or inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Providers {
	case ProvidersLive:
		if strings.TrimSpace(c.MapboxToken) == "" {
			errs = append(errs, errors.New("MAPBOX_TOKEN is required"))
		}
		if strings.TrimSpace(c.OpenWeatherAPIKey) == "" {
			errs = append(errs, errors.New("OPENWEATHER_API_KEY is required"))
		}
	case ProvidersMock:
	default:
		errs = append(errs, fmt.Errorf("PROVIDERS must be %q or %q, got %q", ProvidersLive, ProvidersMock, c.Providers))
	}

	switch c.DriveCache {
	case CacheNone, "":
	case CacheSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required when DRIVE_CACHE=sqlite"))
		}
	case CachePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DRIVE_CACHE=postgres"))
		}
	case CacheRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			errs = append(errs, errors.New("REDIS_URL is required when DRIVE_CACHE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("DRIVE_CACHE must be one of none, sqlite, postgres, redis, got %q", c.DriveCache))
	}

	if c.EnrichConcurrency < 1 {
		errs = append(errs, fmt.Errorf("ENRICH_CONCURRENCY must be positive, got %d", c.EnrichConcurrency))
	}
	if c.DriveCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("DRIVE_CACHE_TTL must not be negative, got %s", c.DriveCacheTTL))
	}

	return errors.Join(errs...)
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
