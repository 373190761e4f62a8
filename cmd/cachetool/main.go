package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"hiking-map-service/internal/adapters/cache"
	"hiking-map-service/internal/config"
	"hiking-map-service/internal/platform/db"
	"hiking-map-service/internal/platform/logging"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// cachetool creates the drive_time_cache schema and can purge stale rows.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}
	logging.Setup(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "console"))

	dialect := flag.String("dialect", config.Get("DRIVE_CACHE", "postgres"), "sqlite or postgres")
	purge := flag.Bool("purge", false, "delete every cached drive time after initializing")
	flag.Parse()

	if _, err := run(*dialect, *purge); err != nil {
		log.Fatal().Err(err).Str("dialect", *dialect).Msg("cachetool failed")
	}
}

// run initializes the schema and, when purge is set, empties the cache.
// It returns the number of purged rows.
func run(dialect string, purge bool) (int64, error) {
	d := cache.Dialect(strings.ToLower(strings.TrimSpace(dialect)))

	conn, err := open(d)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	log.Info().Str("dialect", string(d)).Msg("Initializing drive time cache schema...")
	if err := cache.InitSchema(conn, d); err != nil {
		return 0, fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info().Msg("Schema ready.")

	if !purge {
		return 0, nil
	}

	res, err := conn.Exec(`DELETE FROM drive_time_cache;`)
	if err != nil {
		return 0, fmt.Errorf("purge failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge failed: rows affected: %w", err)
	}
	log.Info().Int64("rows", n).Msg("Purge complete.")

	return n, nil
}

func open(d cache.Dialect) (*sql.DB, error) {
	switch d {
	case cache.DialectSQLite:
		return db.OpenSQLite(config.Get("SQLITE_PATH", "data/cache.db"))
	case cache.DialectPostgres:
		databaseURL := config.Get("DATABASE_URL", "")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, errors.New("DATABASE_URL is required")
		}
		return db.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", d)
	}
}
