package ports

import (
	"context"
	"hiking-map-service/internal/domain"
)

// Optional persistent cache for raw directions durations.
// Implementations must be safe for concurrent use.
type DriveTimeCache interface {
	// Return the cached duration in seconds and whether it was found.
	Get(ctx context.Context, home, destination domain.Coordinates) (float64, bool, error)
	Put(ctx context.Context, home, destination domain.Coordinates, seconds float64) error
}
