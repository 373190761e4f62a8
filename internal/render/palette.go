package render

// Border colors keyed by drive-time band.
const (
	ColorUnder2Hours = "#2980B9"
	ColorUnder4Hours = "#8E44AD"
	ColorUnder6Hours = "#EB984E"
	ColorFar         = "#E74C3C"

	ColorError = "#7F8C8D"
)

// DriveTimeColor maps a drive time in hours to a marker border color.
// Callers pass the already rounded value, so 1.96h (shown as "2.0") is not "under 2".
func DriveTimeColor(hours float64) string {
	switch {
	case hours < 2:
		return ColorUnder2Hours
	case hours < 4:
		return ColorUnder4Hours
	case hours < 6:
		return ColorUnder6Hours
	default:
		return ColorFar
	}
}

type aqiLevel struct {
	color string
	label string
}

var aqiLevels = map[int]aqiLevel{
	1: {color: "#2ECC71", label: "Good"},
	2: {color: "#F1C40F", label: "Fair"},
	3: {color: "#E67E22", label: "Moderate"},
	4: {color: "#E74C3C", label: "Poor"},
	5: {color: "#8E44AD", label: "Very Poor"},
}

// PollutionColor returns the swatch color for an AQI tier.
// The mapping is only defined for 1..5.
func PollutionColor(aqi int) (string, bool) {
	l, ok := aqiLevels[aqi]
	return l.color, ok
}

// PollutionLabel returns the human-readable AQI tier name.
func PollutionLabel(aqi int) (string, bool) {
	l, ok := aqiLevels[aqi]
	return l.label, ok
}
