package features

import (
	"context"
	"encoding/json"
	"fmt"
	"hiking-map-service/internal/domain"
	"io"
	"os"
	"strings"
)

type featureCollection struct {
	Type     string         `json:"type"`
	Features []geoJSONEntry `json:"features"`
}

type geoJSONEntry struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Title       string          `json:"title"`
		Miles       json.RawMessage `json:"miles"`
		Description string          `json:"description"`
	} `json:"properties"`
}

// Decode parses a points-of-interest FeatureCollection.
// Coordinates must be [lon, lat]; any malformed feature fails the whole collection.
func Decode(r io.Reader) ([]domain.Feature, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	out := make([]domain.Feature, 0, len(fc.Features))
	for i, e := range fc.Features {
		coords, err := domain.CoordinatesFromList(e.Geometry.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("decode feature collection: feature %d (%q): %w", i, e.Properties.Title, err)
		}

		out = append(out, domain.Feature{
			Title:       strings.TrimSpace(e.Properties.Title),
			Miles:       miles(e.Properties.Miles),
			Description: e.Properties.Description,
			Coordinates: coords,
		})
	}

	return out, nil
}

// miles accepts either a JSON string or number.
func miles(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// FileSource loads the collection from a GeoJSON file on every call.
type FileSource struct {
	Path string
}

func (f FileSource) Features(ctx context.Context) ([]domain.Feature, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load features: open %q: %w", f.Path, err)
	}
	defer file.Close()

	return Decode(file)
}
