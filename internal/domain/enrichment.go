package domain

import (
	"context"
	"errors"
	"math"
)

// MaxPeriods caps the number of forecast and pollution entries displayed per feature.
const MaxPeriods = 8

var ErrNoRoute = errors.New("no route found")

// One entry of a short-range forecast, reshaped from the weather provider's response.
type ForecastPeriod struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	Icon                string `json:"icon"`
	PrecipitationChance int    `json:"precipitation_chance"`
	Temperature         int    `json:"temperature"`
}

// EnrichmentResult holds the derived data for one feature.
// It is consumed once to build a marker and then discarded.
type EnrichmentResult struct {
	DriveTimeHours float64
	Weather        []ForecastPeriod
	Pollution      []int
}

// FeatureResult is the outcome of enriching a single feature.
// Exactly one of Result and Err is set.
type FeatureResult struct {
	Feature Feature
	Result  *EnrichmentResult
	Err     error
}

func (r FeatureResult) OK() bool { return r.Err == nil && r.Result != nil }

// DriveHours converts a route duration in seconds to hours rounded to one decimal.
func DriveHours(seconds float64) float64 {
	return math.Round(seconds/360) / 10
}

// SourceError tags a failure with the data source that produced it.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string { return e.Source + ": " + e.Err.Error() }

func (e *SourceError) Unwrap() error { return e.Err }

// FailureReason is a client-safe summary of an enrichment failure.
// Upstream bodies and request URLs never appear in it.
func FailureReason(err error) string {
	var se *SourceError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return se.Source + " unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "request cancelled"
	default:
		return "data unavailable"
	}
}
