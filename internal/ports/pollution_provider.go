package ports

import (
	"context"
	"hiking-map-service/internal/domain"
)

// Contract for retrieving air-quality forecasts at a location.
type PollutionProvider interface {
	// Return AQI values (1..5) in chronological order.
	AirQuality(ctx context.Context, at domain.Coordinates) ([]int, error)
}
