package handlers

import (
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/ports"
	"net/http"

	"github.com/samber/lo"
)

type WeatherHandler struct {
	Provider ports.WeatherProvider
}

// Get returns the first forecast periods for a location.
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	at, err := locationParams(r)
	if err != nil {
		badLocation(w, r, err)
		return
	}

	periods, err := h.Provider.Forecast(r.Context(), at)
	if err != nil {
		upstreamFailed(w, r, "weather", err)
		return
	}

	writeJSON(w, r, http.StatusOK, lo.Slice(periods, 0, domain.MaxPeriods))
}
