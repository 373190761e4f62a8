package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"hiking-map-service/internal/api/dto"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/obs"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Err(err).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// allowGet rejects anything but GET with a 405 and reports whether the request may proceed.
func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// upstreamFailed logs the real cause and answers with an opaque 502.
func upstreamFailed(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Error().
		Str("req_id", obs.RequestID(r.Context())).
		Str("op", op).
		Err(err).
		Msg("upstream request failed")
	writeError(w, r, http.StatusBadGateway, "upstream request failed")
}

// locationParams reads the required lat/lon query parameters.
func locationParams(r *http.Request) (domain.Coordinates, error) {
	q := r.URL.Query()

	lat, err := requiredFloat(q.Get("lat"), "lat")
	if err != nil {
		return domain.Coordinates{}, err
	}
	lon, err := requiredFloat(q.Get("lon"), "lon")
	if err != nil {
		return domain.Coordinates{}, err
	}

	at := domain.Coordinates{Lon: lon, Lat: lat}
	if err := at.Validate(); err != nil {
		return domain.Coordinates{}, err
	}
	return at, nil
}

func requiredFloat(raw string, name string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func badLocation(w http.ResponseWriter, r *http.Request, err error) {
	msg := err.Error()
	if errors.Is(err, domain.ErrInvalidCoordinates) {
		msg = "lat must be within [-90, 90] and lon within [-180, 180]"
	}
	writeError(w, r, http.StatusBadRequest, msg)
}
