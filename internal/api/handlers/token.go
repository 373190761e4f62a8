package handlers

import "net/http"

// TokenHandler hands the public map token to browser and CLI clients.
type TokenHandler struct {
	Token string
}

func (h *TokenHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if h.Token == "" {
		writeError(w, r, http.StatusServiceUnavailable, "map token is not configured")
		return
	}

	writeJSON(w, r, http.StatusOK, h.Token)
}
