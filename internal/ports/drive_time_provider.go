package ports

import (
	"context"
	"hiking-map-service/internal/domain"
)

// Contract for retrieving driving duration between two locations.
type DriveTimeProvider interface {
	// Return the driving duration in seconds from home to the destination.
	DriveTime(ctx context.Context, home domain.Coordinates, destination domain.Coordinates) (float64, error)
}
