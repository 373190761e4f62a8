//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"hiking-map-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) string {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"
}

func TestPostgresDriveTimeCache(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	conn, err := db.Open(setupPostgres(t))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(conn, DialectPostgres))

	c := NewSQLDriveTimeCache(conn, DialectPostgres, time.Hour)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, home, dest)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, home, dest, 5400))
	require.NoError(t, c.Put(ctx, home, dest, 5600))

	seconds, ok, err := c.Get(ctx, home, dest)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5600.0, seconds)
}
