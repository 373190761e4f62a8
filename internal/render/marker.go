package render

import (
	"fmt"
	"hiking-map-service/internal/domain"

	"github.com/samber/lo"
)

const (
	ClassFeature = "feature"
	ClassError   = "error"
	ClassHome    = "home"

	// GridColumns is the number of cells per grid row.
	GridColumns = domain.MaxPeriods
)

// Cell is a single hover cell in a marker's info grid.
type Cell struct {
	Color   string `json:"color,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Tooltip string `json:"tooltip"`
}

// Marker is the render model for one map pin: its position, styling, popup and info grid.
// Grid has one row per data source: row 0 weather, row 1 pollution.
type Marker struct {
	Title       string    `json:"title"`
	Coordinates []float64 `json:"coordinates"`
	Class       string    `json:"class"`
	BorderColor string    `json:"border_color,omitempty"`
	DriveTime   string    `json:"drive_time,omitempty"`
	PopupHTML   string    `json:"popup_html"`
	Grid        [][]Cell  `json:"grid,omitempty"`
	Error       string    `json:"error,omitempty"`
	ElementHTML string    `json:"element_html"`
}

// BuildMarker renders a feature result. Failed results become error markers.
func BuildMarker(r domain.FeatureResult) Marker {
	if !r.OK() {
		err := r.Err
		if err == nil {
			err = fmt.Errorf("missing enrichment result")
		}
		return ErrorMarker(r.Feature, err)
	}

	res := r.Result
	hours := fmt.Sprintf("%.1f", res.DriveTimeHours)

	m := Marker{
		Title:       r.Feature.Title,
		Coordinates: r.Feature.Coordinates.CoordsToList(),
		Class:       ClassFeature,
		BorderColor: DriveTimeColor(res.DriveTimeHours),
		DriveTime:   hours,
		PopupHTML:   popupHTML(r.Feature.Title, hours+" hours", r.Feature.Description),
		Grid: [][]Cell{
			weatherRow(res.Weather),
			pollutionRow(res.Pollution),
		},
	}
	m.ElementHTML = elementHTML(m)
	return m
}

// ErrorMarker renders a visible pin for a feature whose enrichment failed.
// Only a client-safe reason is kept; callers log the full error.
func ErrorMarker(f domain.Feature, err error) Marker {
	reason := domain.FailureReason(err)
	m := Marker{
		Title:       f.Title,
		Coordinates: f.Coordinates.CoordsToList(),
		Class:       ClassError,
		BorderColor: ColorError,
		PopupHTML:   popupHTML(f.Title, reason, f.Description),
		Error:       reason,
	}
	m.ElementHTML = elementHTML(m)
	return m
}

// HomeMarker renders the starting location.
func HomeMarker(home domain.Coordinates) Marker {
	m := Marker{
		Title:       "Launch Pad",
		Coordinates: home.CoordsToList(),
		Class:       ClassHome,
		PopupHTML:   popupHTML("Launch Pad", "", ""),
	}
	m.ElementHTML = elementHTML(m)
	return m
}

func weatherRow(periods []domain.ForecastPeriod) []Cell {
	return lo.Map(lo.Slice(periods, 0, GridColumns), func(p domain.ForecastPeriod, _ int) Cell {
		return Cell{
			Icon:    p.Icon,
			Tooltip: fmt.Sprintf("%s: %d°, %s, %d%%", p.Name, p.Temperature, p.Description, p.PrecipitationChance),
		}
	})
}

func pollutionRow(values []int) []Cell {
	return lo.Map(lo.Slice(values, 0, GridColumns), func(v int, _ int) Cell {
		color, _ := PollutionColor(v)
		label, ok := PollutionLabel(v)
		if !ok {
			label = "unknown"
		}
		return Cell{
			Color:   color,
			Tooltip: fmt.Sprintf("AQI %d (%s)", v, label),
		}
	})
}
