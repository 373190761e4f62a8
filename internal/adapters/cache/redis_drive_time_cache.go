package cache

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/obs"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDriveTimeCache stores drive durations as plain string keys with a TTL.
type RedisDriveTimeCache struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

func NewRedisDriveTimeCache(client *redis.Client, ttl time.Duration) *RedisDriveTimeCache {
	return &RedisDriveTimeCache{Client: client, Prefix: "drivetime:", TTL: ttl}
}

func (r *RedisDriveTimeCache) key(home, destination domain.Coordinates) string {
	return r.Prefix + home.Key() + "|" + destination.Key()
}

func (r *RedisDriveTimeCache) Get(
	ctx context.Context,
	home domain.Coordinates,
	destination domain.Coordinates,
) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "drivetime.redis.Get")(&err)

	if r.Client == nil {
		return 0, false, errors.New("drive time cache: redis client is nil")
	}

	v, err := r.Client.Get(ctx, r.key(home, destination)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get drive time cache: redis get: %w", err)
	}

	seconds, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("get drive time cache: parse %q: %w", v, err)
	}

	return seconds, true, nil
}

func (r *RedisDriveTimeCache) Put(
	ctx context.Context,
	home domain.Coordinates,
	destination domain.Coordinates,
	seconds float64,
) error {
	if r.Client == nil {
		return errors.New("drive time cache: redis client is nil")
	}

	v := strconv.FormatFloat(seconds, 'f', -1, 64)
	if err := r.Client.Set(ctx, r.key(home, destination), v, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert drive time cache dest=%q: %w", destination.Key(), err)
	}

	return nil
}
