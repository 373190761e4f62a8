package dto

import "hiking-map-service/internal/render"

type MarkersResponse struct {
	Home    render.Marker   `json:"home"`
	Markers []render.Marker `json:"markers"`
}
