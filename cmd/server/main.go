package main

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/adapters/cache"
	"hiking-map-service/internal/adapters/directions"
	"hiking-map-service/internal/adapters/features"
	"hiking-map-service/internal/adapters/pollution"
	"hiking-map-service/internal/adapters/weather"
	"hiking-map-service/internal/api"
	"hiking-map-service/internal/config"
	"hiking-map-service/internal/platform/db"
	"hiking-map-service/internal/platform/logging"
	"hiking-map-service/internal/ports"
	"hiking-map-service/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires concrete adapters (Mapbox, NWS, OpenWeather, caches) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	driveCache, closeCache, err := openDriveCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.DriveCache).Msg("cannot open drive time cache")
	}
	defer closeCache()

	providers, err := buildProviders(cfg, driveCache)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build providers")
	}

	router := api.NewRouter(api.Deps{
		MapboxToken: cfg.MapboxToken,
		Features:    features.FileSource{Path: cfg.FeaturesPath},
		Weather:     providers.Weather,
		Pollution:   providers.Pollution,
		Enricher:    services.NewEnricher(providers, cfg.EnrichConcurrency),
		StaticDir:   cfg.StaticDir,
	})

	// WriteTimeout covers a full cold-cache enrichment of the collection.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().
		Str("addr", srv.Addr).
		Str("providers", cfg.Providers).
		Str("drive_cache", cfg.DriveCache).
		Msg("Server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("Server stopped")
}

func buildProviders(cfg *config.Config, driveCache ports.DriveTimeCache) (services.Providers, error) {
	if cfg.Providers == config.ProvidersMock {
		log.Warn().Msg("using mock providers")
		return services.Providers{
			Drive:     directions.NewMockProvider(nil, 5400),
			Weather:   &weather.MockProvider{Periods: 14},
			Pollution: &pollution.MockProvider{Hours: 96},
		}, nil
	}

	drive, err := directions.NewMapboxProvider(cfg.MapboxToken, cfg.MapboxBaseURL, driveCache)
	if err != nil {
		return services.Providers{}, fmt.Errorf("build providers: %w", err)
	}
	air, err := pollution.NewOpenWeatherProvider(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL)
	if err != nil {
		return services.Providers{}, fmt.Errorf("build providers: %w", err)
	}

	return services.Providers{
		Drive:     drive,
		Weather:   weather.NewNWSProvider(cfg.NWSBaseURL, cfg.NWSUserAgent),
		Pollution: air,
	}, nil
}

// openDriveCache returns a nil cache when caching is disabled.
func openDriveCache(cfg *config.Config) (ports.DriveTimeCache, func(), error) {
	noop := func() {}

	switch cfg.DriveCache {
	case config.CacheSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		if err := cache.InitSchema(conn, cache.DialectSQLite); err != nil {
			conn.Close()
			return nil, noop, err
		}
		return cache.NewSQLDriveTimeCache(conn, cache.DialectSQLite, cfg.DriveCacheTTL), func() { conn.Close() }, nil

	case config.CachePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		// Schema is owned by cmd/cachetool for postgres deployments.
		return cache.NewSQLDriveTimeCache(conn, cache.DialectPostgres, cfg.DriveCacheTTL), func() { conn.Close() }, nil

	case config.CacheRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		return cache.NewRedisDriveTimeCache(client, cfg.DriveCacheTTL), func() { client.Close() }, nil

	default:
		return nil, noop, nil
	}
}
