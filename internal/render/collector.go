package render

import "sync"

// Collector is a MarkerSink that keeps markers in arrival order.
type Collector struct {
	mu      sync.Mutex
	markers []Marker
}

func (c *Collector) Add(m Marker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markers = append(c.markers, m)
}

// Markers returns a copy of everything added so far.
func (c *Collector) Markers() []Marker {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Marker, len(c.markers))
	copy(out, c.markers)
	return out
}
