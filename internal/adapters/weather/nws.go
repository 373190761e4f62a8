package weather

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/httpx"
	"hiking-map-service/internal/platform/obs"
	"strings"
	"time"
)

const (
	DefaultNWSBaseURL   = "https://api.weather.gov"
	DefaultNWSUserAgent = "hiking-map-service (ops@example.com)"
)

type pointsResponse struct {
	Properties struct {
		GridID   string `json:"gridId"`
		GridX    int    `json:"gridX"`
		GridY    int    `json:"gridY"`
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []struct {
			Name                       string `json:"name"`
			Temperature                int    `json:"temperature"`
			Icon                       string `json:"icon"`
			ShortForecast              string `json:"shortForecast"`
			ProbabilityOfPrecipitation struct {
				Value *float64 `json:"value"`
			} `json:"probabilityOfPrecipitation"`
		} `json:"periods"`
	} `json:"properties"`
}

// NWSProvider implements WeatherProvider using the National Weather Service API.
// A forecast takes two calls: the points lookup resolves the grid point for the
// coordinates, then the gridpoint forecast is fetched.
type NWSProvider struct {
	client  *httpx.Client
	baseURL string
}

func NewNWSProvider(baseURL string, userAgent string) *NWSProvider {
	if baseURL == "" {
		baseURL = DefaultNWSBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultNWSUserAgent
	}

	client := httpx.NewClient(10 * time.Second)
	client.Header.Set("User-Agent", userAgent)
	client.Header.Set("Accept", "application/geo+json")

	return &NWSProvider{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Forecast returns the reshaped forecast periods for the grid point containing at.
func (n *NWSProvider) Forecast(ctx context.Context, at domain.Coordinates) (_ []domain.ForecastPeriod, err error) {
	defer obs.Time(ctx, "nws.Forecast")(&err)

	grid, err := n.gridPoint(ctx, at)
	if err != nil {
		return nil, err
	}

	var fr forecastResponse
	if err := n.client.GetJSON(ctx, n.forecastURL(grid), &fr); err != nil {
		return nil, fmt.Errorf("forecast request for %s: %w", grid.id(), err)
	}

	out := make([]domain.ForecastPeriod, 0, len(fr.Properties.Periods))
	for _, p := range fr.Properties.Periods {
		chance := 0
		if p.ProbabilityOfPrecipitation.Value != nil {
			chance = int(*p.ProbabilityOfPrecipitation.Value)
		}
		out = append(out, domain.ForecastPeriod{
			Name:                p.Name,
			Description:         p.ShortForecast,
			Icon:                p.Icon,
			PrecipitationChance: chance,
			Temperature:         p.Temperature,
		})
	}

	return out, nil
}

type gridPoint struct {
	office string
	x, y   int
}

func (g gridPoint) id() string { return fmt.Sprintf("%s/%d,%d", g.office, g.x, g.y) }

func (n *NWSProvider) gridPoint(ctx context.Context, at domain.Coordinates) (gridPoint, error) {
	// NWS rejects more than 4 decimals of precision.
	endpoint := fmt.Sprintf("%s/points/%.4f,%.4f", n.baseURL, at.Lat, at.Lon)

	var pr pointsResponse
	if err := n.client.GetJSON(ctx, endpoint, &pr); err != nil {
		return gridPoint{}, fmt.Errorf("points request for %s: %w", at.Key(), err)
	}

	if pr.Properties.GridID == "" {
		return gridPoint{}, errors.New("points response has no gridId")
	}

	return gridPoint{office: pr.Properties.GridID, x: pr.Properties.GridX, y: pr.Properties.GridY}, nil
}

func (n *NWSProvider) forecastURL(g gridPoint) string {
	return fmt.Sprintf("%s/gridpoints/%s/forecast", n.baseURL, g.id())
}
