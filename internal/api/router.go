package api

import (
	"hiking-map-service/internal/api/handlers"
	"hiking-map-service/internal/ports"
	"hiking-map-service/internal/services"
	"net/http"
)

// Deps are the collaborators the HTTP layer needs. Concrete adapters are chosen in cmd/server.
type Deps struct {
	MapboxToken string
	Features    ports.FeatureSource
	Weather     ports.WeatherProvider
	Pollution   ports.PollutionProvider
	Enricher    *services.Enricher
	StaticDir   string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	tokenHandler := &handlers.TokenHandler{Token: deps.MapboxToken}
	weatherHandler := &handlers.WeatherHandler{Provider: deps.Weather}
	pollutionHandler := &handlers.PollutionHandler{Provider: deps.Pollution}
	markerHandler := &handlers.MarkerHandler{
		Features: deps.Features,
		Enricher: deps.Enricher,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/mapbox_token", tokenHandler.Get)
	mux.HandleFunc("/weather", weatherHandler.Get)
	mux.HandleFunc("/pollution", pollutionHandler.Get)
	mux.HandleFunc("/markers", markerHandler.List)
	mux.HandleFunc("/markers/stream", markerHandler.Stream)

	if deps.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticDir))))
	}

	// Outermost first: every log line and response carries the request id.
	return requestIDMiddleware(loggingMiddleware(corsMiddleware(mux)))
}
