package services

import (
	"context"
	"errors"
	"hiking-map-service/internal/adapters/directions"
	"hiking-map-service/internal/adapters/pollution"
	"hiking-map-service/internal/adapters/weather"
	"hiking-map-service/internal/domain"
	"testing"
)

var home = domain.DefaultHome

func TestEnrichFeatureTruncatesToEightEntries(t *testing.T) {
	dest := domain.Coordinates{Lon: -118.0, Lat: 46.1}
	providers := Providers{
		Drive:     directions.NewMockProvider(map[domain.Coordinates]float64{dest: 5400}, 0),
		Weather:   &weather.MockProvider{Periods: 40},
		Pollution: &pollution.MockProvider{Hours: 96},
	}

	res, err := EnrichFeature(context.Background(), domain.Feature{Title: "Lake", Coordinates: dest}, home, providers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.DriveTimeHours != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", res.DriveTimeHours)
	}
	if len(res.Weather) != domain.MaxPeriods {
		t.Fatalf("expected %d weather periods, got %d", domain.MaxPeriods, len(res.Weather))
	}
	if len(res.Pollution) != domain.MaxPeriods {
		t.Fatalf("expected %d pollution values, got %d", domain.MaxPeriods, len(res.Pollution))
	}
}

func TestEnrichFeatureKeepsShortLists(t *testing.T) {
	providers := Providers{
		Drive:     directions.NewMockProvider(nil, 600),
		Weather:   &weather.MockProvider{Periods: 3},
		Pollution: &pollution.MockProvider{Hours: 0},
	}

	res, err := EnrichFeature(context.Background(), domain.Feature{Title: "Peak"}, home, providers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Weather) != 3 {
		t.Fatalf("expected 3 weather periods, got %d", len(res.Weather))
	}
	if len(res.Pollution) != 0 {
		t.Fatalf("expected no pollution values, got %d", len(res.Pollution))
	}
}

func TestEnrichFeatureFirstFailureCancelsSiblings(t *testing.T) {
	drive := &blockingDrive{}
	upstream := errors.New("weather down")
	providers := Providers{
		Drive:     drive,
		Weather:   &weather.MockProvider{Err: upstream},
		Pollution: &pollution.MockProvider{Hours: 8},
	}

	_, err := EnrichFeature(context.Background(), domain.Feature{Title: "Ridge"}, home, providers)
	if !errors.Is(err, upstream) {
		t.Fatalf("expected weather error, got %v", err)
	}
	if !drive.cancelled.Load() {
		t.Fatal("expected drive time lookup to observe cancellation")
	}
}

func TestEnrichFeatureRequiresProviders(t *testing.T) {
	_, err := EnrichFeature(context.Background(), domain.Feature{}, home, Providers{})
	if err == nil {
		t.Fatal("expected error for missing providers")
	}
}
