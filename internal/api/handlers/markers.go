package handlers

import (
	"encoding/json"
	"hiking-map-service/internal/api/dto"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/obs"
	"hiking-map-service/internal/ports"
	"hiking-map-service/internal/render"
	"hiking-map-service/internal/services"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

// MarkerHandler enriches the feature collection and returns rendered markers,
// either as one JSON document or as a stream of NDJSON lines.
type MarkerHandler struct {
	Features ports.FeatureSource
	Enricher *services.Enricher
}

func (h *MarkerHandler) load(w http.ResponseWriter, r *http.Request) ([]domain.Feature, domain.Coordinates, bool) {
	q := r.URL.Query()
	home := domain.ResolveHome(q.Get("long"), q.Get("lat"))

	features, err := h.Features.Features(r.Context())
	if err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Err(err).
			Msg("load features failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, home, false
	}

	return features, home, true
}

// List waits for every feature and answers with {"home": ..., "markers": [...]}.
// Markers are in completion order.
func (h *MarkerHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	features, home, ok := h.load(w, r)
	if !ok {
		return
	}

	sink := &render.Collector{}
	if err := h.Enricher.Run(r.Context(), features, home, sink); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Err(err).
			Msg("enrich features failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MarkersResponse{
		Home:    render.HomeMarker(home),
		Markers: sink.Markers(),
	})
}

// Stream writes the home marker, then one line per feature as soon as it completes.
func (h *MarkerHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	features, home, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	sink := newNDJSONSink(w)
	sink.Add(render.HomeMarker(home))

	if err := h.Enricher.Run(r.Context(), features, home, sink); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Err(err).
			Msg("enrich features failed")
	}
	if err := sink.Err(); err != nil {
		log.Warn().
			Str("req_id", obs.RequestID(r.Context())).
			Err(err).
			Msg("marker stream interrupted")
	}
}

// ndjsonSink writes each marker as one JSON line and flushes it immediately.
type ndjsonSink struct {
	mu  sync.Mutex
	w   http.ResponseWriter
	enc *json.Encoder
	err error
}

func newNDJSONSink(w http.ResponseWriter) *ndjsonSink {
	return &ndjsonSink{w: w, enc: json.NewEncoder(w)}
}

func (s *ndjsonSink) Add(m render.Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return
	}
	if err := s.enc.Encode(m); err != nil {
		s.err = err
		return
	}
	if err := http.NewResponseController(s.w).Flush(); err != nil {
		s.err = err
	}
}

func (s *ndjsonSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
