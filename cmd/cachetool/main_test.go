package main

import (
	"context"
	"hiking-map-service/internal/adapters/cache"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/db"
	"path/filepath"
	"testing"
	"time"
)

func TestRunSQLiteInitAndPurge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	t.Setenv("SQLITE_PATH", path)

	n, err := run("SQLite", false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if n != 0 {
		t.Fatalf("init without purge removed %d rows", n)
	}

	conn, err := db.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	c := cache.NewSQLDriveTimeCache(conn, cache.DialectSQLite, time.Hour)
	ctx := context.Background()
	home := domain.DefaultHome
	for i, lon := range []float64{-118.0, -117.5} {
		if err := c.Put(ctx, home, domain.Coordinates{Lon: lon, Lat: 46}, float64(600*(i+1))); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	conn.Close()

	n, err = run("sqlite", true)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 purged rows, got %d", n)
	}

	conn, err = db.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer conn.Close()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM drive_time_cache;`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cache after purge, got %d rows", count)
	}
}

func TestRunRejectsUnknownDialect(t *testing.T) {
	if _, err := run("oracle", false); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestRunPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := run("postgres", false); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}
