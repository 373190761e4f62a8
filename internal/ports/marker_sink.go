package ports

import "hiking-map-service/internal/render"

// MarkerSink receives rendered markers as features complete.
// Add may be called from multiple goroutines.
type MarkerSink interface {
	Add(m render.Marker)
}
