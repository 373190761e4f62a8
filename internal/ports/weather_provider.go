package ports

import (
	"context"
	"hiking-map-service/internal/domain"
)

// Contract for retrieving a short-range forecast at a location.
type WeatherProvider interface {
	// Return forecast periods in chronological order.
	Forecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastPeriod, error)
}
