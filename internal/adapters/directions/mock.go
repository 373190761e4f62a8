package directions

import (
	"context"
	"fmt"
	"hiking-map-service/internal/domain"
	"sync/atomic"
)

// MockProvider returns fixed durations keyed by destination. Unknown destinations
// fall back to Default when it is non-zero.
type MockProvider struct {
	Durations map[string]float64
	Default   float64
	calls     atomic.Int64
}

func NewMockProvider(durations map[domain.Coordinates]float64, fallback float64) *MockProvider {
	m := make(map[string]float64, len(durations))
	for c, s := range durations {
		m[c.Key()] = s
	}
	return &MockProvider{Durations: m, Default: fallback}
}

func (p *MockProvider) DriveTime(ctx context.Context, home, destination domain.Coordinates) (float64, error) {
	p.calls.Add(1)
	if s, ok := p.Durations[destination.Key()]; ok {
		return s, nil
	}
	if p.Default != 0 {
		return p.Default, nil
	}
	return 0, fmt.Errorf("missing drive time %s -> %s", home.Key(), destination.Key())
}

// Calls reports how many lookups were made.
func (p *MockProvider) Calls() int64 { return p.calls.Load() }
