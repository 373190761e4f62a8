package handlers

import (
	"hiking-map-service/internal/ports"
	"net/http"
)

// PollutionHandler proxies air-quality forecasts so the provider key stays server-side.
type PollutionHandler struct {
	Provider ports.PollutionProvider
}

func (h *PollutionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	at, err := locationParams(r)
	if err != nil {
		badLocation(w, r, err)
		return
	}

	values, err := h.Provider.AirQuality(r.Context(), at)
	if err != nil {
		upstreamFailed(w, r, "pollution", err)
		return
	}
	if values == nil {
		values = []int{}
	}

	writeJSON(w, r, http.StatusOK, values)
}
