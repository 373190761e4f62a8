package services

import (
	"context"
	"errors"
	"hiking-map-service/internal/domain"
	"sync"
	"sync/atomic"
	"time"
)

type countingWeather struct {
	periods int
	calls   atomic.Int64
}

func (w *countingWeather) Forecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastPeriod, error) {
	w.calls.Add(1)
	out := make([]domain.ForecastPeriod, w.periods)
	for i := range out {
		out[i] = domain.ForecastPeriod{Name: "P", Description: "Sunny", Temperature: 60 + i}
	}
	return out, nil
}

// failingPollution fails for one destination and returns hours values elsewhere.
type failingPollution struct {
	failAt domain.Coordinates
	hours  int
	calls  atomic.Int64
}

func (p *failingPollution) AirQuality(ctx context.Context, at domain.Coordinates) ([]int, error) {
	p.calls.Add(1)
	if at.Key() == p.failAt.Key() {
		return nil, errors.New("upstream status 503")
	}
	out := make([]int, p.hours)
	for i := range out {
		out[i] = i%5 + 1
	}
	return out, nil
}

// blockingDrive waits for cancellation and records that it observed it.
type blockingDrive struct {
	cancelled atomic.Bool
}

func (d *blockingDrive) DriveTime(ctx context.Context, home, destination domain.Coordinates) (float64, error) {
	select {
	case <-ctx.Done():
		d.cancelled.Store(true)
		return 0, ctx.Err()
	case <-time.After(5 * time.Second):
		return 3600, nil
	}
}

// gaugeDrive tracks the peak number of concurrent calls.
type gaugeDrive struct {
	mu      sync.Mutex
	current int
	peak    int
}

func (d *gaugeDrive) DriveTime(ctx context.Context, home, destination domain.Coordinates) (float64, error) {
	d.mu.Lock()
	d.current++
	if d.current > d.peak {
		d.peak = d.current
	}
	d.mu.Unlock()

	time.Sleep(10 * time.Millisecond)

	d.mu.Lock()
	d.current--
	d.mu.Unlock()
	return 1800, nil
}
