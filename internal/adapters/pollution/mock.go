package pollution

import (
	"context"
	"hiking-map-service/internal/domain"
)

// MockProvider cycles through AQI tiers 1..5 for any location.
type MockProvider struct {
	Hours int
	Err   error
}

func (p *MockProvider) AirQuality(ctx context.Context, at domain.Coordinates) ([]int, error) {
	if p.Err != nil {
		return nil, p.Err
	}

	out := make([]int, 0, p.Hours)
	for i := 0; i < p.Hours; i++ {
		out = append(out, i%5+1)
	}
	return out, nil
}
