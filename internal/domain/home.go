package domain

import "strconv"

// DefaultHome is the launch pad used when no home override is supplied.
var DefaultHome = Coordinates{Lon: -118.343, Lat: 46.0645}

// ResolveHome builds the home coordinate from the raw "long" and "lat" query values.
// Each component that is missing, unparseable or zero falls back to DefaultHome.
func ResolveHome(long, lat string) Coordinates {
	home := DefaultHome
	if v, ok := parseNonZero(long); ok {
		home.Lon = v
	}
	if v, ok := parseNonZero(lat); ok {
		home.Lat = v
	}
	return home
}

func parseNonZero(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}
