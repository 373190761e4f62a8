package ports

import (
	"context"
	"hiking-map-service/internal/domain"
)

// Port: a boundary for loading the points-of-interest collection.
type FeatureSource interface {
	Features(ctx context.Context) ([]domain.Feature, error)
}
