package services

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/obs"
	"hiking-map-service/internal/ports"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Providers bundles the three lookups performed for every feature.
type Providers struct {
	Drive     ports.DriveTimeProvider
	Weather   ports.WeatherProvider
	Pollution ports.PollutionProvider
}

func (p Providers) validate() error {
	if p.Drive == nil || p.Weather == nil || p.Pollution == nil {
		return errors.New("enrich: drive, weather and pollution providers are required")
	}
	return nil
}

// EnrichFeature runs the drive time, weather and pollution lookups for one feature
// concurrently and joins them. The first failure cancels the other two lookups.
func EnrichFeature(
	ctx context.Context,
	feature domain.Feature,
	home domain.Coordinates,
	providers Providers,
) (_ *domain.EnrichmentResult, err error) {
	defer obs.Time(ctx, "enrich.Feature")(&err)

	if err := providers.validate(); err != nil {
		return nil, err
	}

	var (
		seconds   float64
		periods   []domain.ForecastPeriod
		aqiValues []int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := providers.Drive.DriveTime(gctx, home, feature.Coordinates)
		if err != nil {
			return &domain.SourceError{Source: "drive time", Err: err}
		}
		seconds = s
		return nil
	})

	g.Go(func() error {
		p, err := providers.Weather.Forecast(gctx, feature.Coordinates)
		if err != nil {
			return &domain.SourceError{Source: "weather", Err: err}
		}
		periods = p
		return nil
	})

	g.Go(func() error {
		v, err := providers.Pollution.AirQuality(gctx, feature.Coordinates)
		if err != nil {
			return &domain.SourceError{Source: "pollution", Err: err}
		}
		aqiValues = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("enrich %q: %w", feature.Title, err)
	}

	return &domain.EnrichmentResult{
		DriveTimeHours: domain.DriveHours(seconds),
		Weather:        lo.Slice(periods, 0, domain.MaxPeriods),
		Pollution:      lo.Slice(aqiValues, 0, domain.MaxPeriods),
	}, nil
}
