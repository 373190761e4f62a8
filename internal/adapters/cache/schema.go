package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// InitSchema creates the drive_time_cache table for the given dialect.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case DialectSQLite:
		statements = []string{`
		CREATE TABLE IF NOT EXISTS drive_time_cache (
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			duration_seconds REAL NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (origin, destination)
		);
		`}
	case DialectPostgres:
		statements = []string{`
		CREATE TABLE IF NOT EXISTS drive_time_cache (
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			duration_seconds DOUBLE PRECISION NOT NULL,
			fetched_at BIGINT NOT NULL,
			PRIMARY KEY (origin, destination)
		);
		`}
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	statements = append(statements, `
	CREATE INDEX IF NOT EXISTS idx_drive_time_cache_fetched_at
	ON drive_time_cache(fetched_at);
	`)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
