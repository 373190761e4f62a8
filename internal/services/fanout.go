package services

import (
	"context"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/obs"
	"hiking-map-service/internal/ports"
	"hiking-map-service/internal/render"
	"sync"

	"github.com/rs/zerolog/log"
)

const DefaultConcurrency = 8

// Enricher fans feature enrichment out over a bounded number of goroutines.
//
// Features are independent: a failure in one never cancels the others, and
// results are delivered in completion order rather than input order.
type Enricher struct {
	Providers   Providers
	Concurrency int
}

func NewEnricher(providers Providers, concurrency int) *Enricher {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Enricher{Providers: providers, Concurrency: concurrency}
}

// Stream enriches every feature and sends each FeatureResult as soon as its
// triad completes. The channel is closed after the last feature.
func (e *Enricher) Stream(
	ctx context.Context,
	features []domain.Feature,
	home domain.Coordinates,
) <-chan domain.FeatureResult {
	limit := e.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	sem := make(chan struct{}, limit)
	resultsCh := make(chan domain.FeatureResult, len(features))
	var wg sync.WaitGroup

	for _, f := range features {
		wg.Add(1)
		go func(feature domain.Feature) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				resultsCh <- domain.FeatureResult{Feature: feature, Err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			res, err := EnrichFeature(ctx, feature, home, e.Providers)
			resultsCh <- domain.FeatureResult{Feature: feature, Result: res, Err: err}
		}(f)
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	return resultsCh
}

// Run enriches every feature and renders each one into sink as it completes.
// Failed features are rendered as error markers. Run returns after the last
// marker has been delivered.
func (e *Enricher) Run(
	ctx context.Context,
	features []domain.Feature,
	home domain.Coordinates,
	sink ports.MarkerSink,
) (err error) {
	defer obs.Time(ctx, "enrich.Run")(&err)

	if err := e.Providers.validate(); err != nil {
		return err
	}

	failed := 0
	for r := range e.Stream(ctx, features, home) {
		if !r.OK() {
			failed++
			log.Warn().
				Str("req_id", obs.RequestID(ctx)).
				Str("feature", r.Feature.Title).
				Err(r.Err).
				Msg("feature enrichment failed")
		}
		sink.Add(render.BuildMarker(r))
	}

	log.Debug().
		Str("req_id", obs.RequestID(ctx)).
		Int("features", len(features)).
		Int("failed", failed).
		Msg("enrichment finished")

	return nil
}
