package domain

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Key returns a stable "lon,lat" string with 5 decimals (about 1m), used for cache keys.
func (c Coordinates) Key() string {
	return strconv.FormatFloat(c.Lon, 'f', 5, 64) + "," + strconv.FormatFloat(c.Lat, 'f', 5, 64)
}

func (c Coordinates) Validate() error {
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidCoordinates, c.Lon)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidCoordinates, c.Lat)
	}
	return nil
}

// CoordinatesFromList builds Coordinates from a GeoJSON [lon, lat] pair.
func CoordinatesFromList(pair []float64) (Coordinates, error) {
	if len(pair) != 2 {
		return Coordinates{}, fmt.Errorf("%w: expected [lon, lat], got %d values", ErrInvalidCoordinates, len(pair))
	}
	c := Coordinates{Lon: pair[0], Lat: pair[1]}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}
