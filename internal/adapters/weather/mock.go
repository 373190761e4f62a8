package weather

import (
	"context"
	"fmt"
	"hiking-map-service/internal/domain"
)

// MockProvider returns a generated forecast of Periods entries for any location.
type MockProvider struct {
	Periods int
	Err     error
}

func (p *MockProvider) Forecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastPeriod, error) {
	if p.Err != nil {
		return nil, p.Err
	}

	names := []string{"Today", "Tonight"}
	out := make([]domain.ForecastPeriod, 0, p.Periods)
	for i := 0; i < p.Periods; i++ {
		out = append(out, domain.ForecastPeriod{
			Name:                fmt.Sprintf("%s +%d", names[i%2], i/2),
			Description:         "Partly Cloudy",
			Icon:                "https://api.weather.gov/icons/land/day/sct?size=small",
			PrecipitationChance: (i * 10) % 100,
			Temperature:         70 - (i%2)*25,
		})
	}
	return out, nil
}
