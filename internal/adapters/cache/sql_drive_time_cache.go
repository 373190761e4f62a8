package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/obs"
	"time"
)

// SQLDriveTimeCache is a SQL-backed cache for home->destination drive durations.
// Queries are written per dialect: postgres uses $n placeholders, sqlite uses ?.
// Entries older than TTL are treated as misses; a zero TTL never expires.
type SQLDriveTimeCache struct {
	DB      *sql.DB
	Dialect Dialect
	TTL     time.Duration

	now func() time.Time
}

func NewSQLDriveTimeCache(db *sql.DB, dialect Dialect, ttl time.Duration) *SQLDriveTimeCache {
	return &SQLDriveTimeCache{DB: db, Dialect: dialect, TTL: ttl, now: time.Now}
}

func (s *SQLDriveTimeCache) Get(
	ctx context.Context,
	home domain.Coordinates,
	destination domain.Coordinates,
) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "drivetime.cache.Get")(&err)

	if s.DB == nil {
		return 0, false, errors.New("drive time cache: db is nil")
	}

	q := `
	SELECT duration_seconds, fetched_at
	FROM drive_time_cache
	WHERE origin = $1
		AND destination = $2;
	`
	if s.Dialect == DialectSQLite {
		q = `
		SELECT duration_seconds, fetched_at
		FROM drive_time_cache
		WHERE origin = ?
			AND destination = ?;
		`
	}

	var seconds float64
	var fetchedAt int64
	err = s.DB.QueryRowContext(ctx, q, home.Key(), destination.Key()).Scan(&seconds, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get drive time cache: query drive_time_cache table: %w", err)
	}

	if s.TTL > 0 && s.clock().Sub(time.Unix(fetchedAt, 0)) > s.TTL {
		return 0, false, nil
	}

	return seconds, true, nil
}

func (s *SQLDriveTimeCache) Put(
	ctx context.Context,
	home domain.Coordinates,
	destination domain.Coordinates,
	seconds float64,
) error {
	if s.DB == nil {
		return errors.New("drive time cache: db is nil")
	}

	q := `
	INSERT INTO drive_time_cache (origin, destination, duration_seconds, fetched_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET duration_seconds = EXCLUDED.duration_seconds,
		fetched_at = EXCLUDED.fetched_at;
	`
	if s.Dialect == DialectSQLite {
		q = `
		INSERT OR REPLACE INTO drive_time_cache (
			origin,
			destination,
			duration_seconds,
			fetched_at
		)
		VALUES (?, ?, ?, ?);
		`
	}

	if _, err := s.DB.ExecContext(ctx, q, home.Key(), destination.Key(), seconds, s.clock().Unix()); err != nil {
		return fmt.Errorf("insert drive time cache dest=%q: %w", destination.Key(), err)
	}

	return nil
}

func (s *SQLDriveTimeCache) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
