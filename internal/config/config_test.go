package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for k := range defaults {
		t.Setenv(k, "")
	}

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "static/hiking.geojson", cfg.FeaturesPath)
	assert.Equal(t, 8, cfg.EnrichConcurrency)
	assert.Equal(t, CacheNone, cfg.DriveCache)
	assert.Equal(t, 24*time.Hour, cfg.DriveCacheTTL)
	assert.Equal(t, ProvidersLive, cfg.Providers)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENRICH_CONCURRENCY", "3")
	t.Setenv("DRIVE_CACHE", "Redis")
	t.Setenv("DRIVE_CACHE_TTL", "90m")
	t.Setenv("PROVIDERS", "mock")

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.EnrichConcurrency)
	assert.Equal(t, CacheRedis, cfg.DriveCache)
	assert.Equal(t, 90*time.Minute, cfg.DriveCacheTTL)
	assert.Equal(t, ProvidersMock, cfg.Providers)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			MapboxToken:       "pk.test",
			OpenWeatherAPIKey: "key",
			EnrichConcurrency: 8,
			DriveCache:        CacheNone,
			Providers:         ProvidersLive,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing token", func(c *Config) { c.MapboxToken = "" }, "MAPBOX_TOKEN"},
		{"missing key", func(c *Config) { c.OpenWeatherAPIKey = " " }, "OPENWEATHER_API_KEY"},
		{"mock needs no keys", func(c *Config) {
			c.Providers = ProvidersMock
			c.MapboxToken = ""
			c.OpenWeatherAPIKey = ""
		}, ""},
		{"unknown providers", func(c *Config) { c.Providers = "stub" }, "PROVIDERS"},
		{"postgres without url", func(c *Config) { c.DriveCache = CachePostgres }, "DATABASE_URL"},
		{"unknown cache", func(c *Config) { c.DriveCache = "memcached" }, "DRIVE_CACHE"},
		{"zero concurrency", func(c *Config) { c.EnrichConcurrency = 0 }, "ENRICH_CONCURRENCY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
