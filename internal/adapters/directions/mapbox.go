package directions

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/httpx"
	"hiking-map-service/internal/platform/obs"
	"hiking-map-service/internal/ports"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultMapboxBaseURL = "https://api.mapbox.com"

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// MapboxProvider implements DriveTimeProvider using the Mapbox Directions API.
//
// An optional DriveTimeCache is consulted before calling the API; cache write
// failures are logged and do not fail the lookup.
// The provider is safe for concurrent use.
type MapboxProvider struct {
	client  *httpx.Client
	token   string
	baseURL string
	profile string
	cache   ports.DriveTimeCache
}

func NewMapboxProvider(token string, baseURL string, cache ports.DriveTimeCache) (*MapboxProvider, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("mapbox access token is empty")
	}
	if baseURL == "" {
		baseURL = DefaultMapboxBaseURL
	}

	return &MapboxProvider{
		client:  httpx.NewClient(10 * time.Second),
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "mapbox/driving",
		cache:   cache,
	}, nil
}

// DriveTime returns the duration of the first route from home to destination in seconds.
func (m *MapboxProvider) DriveTime(
	ctx context.Context,
	home domain.Coordinates,
	destination domain.Coordinates,
) (_ float64, err error) {
	defer obs.Time(ctx, "mapbox.DriveTime")(&err)

	if m.cache != nil {
		seconds, ok, err := m.cache.Get(ctx, home, destination)
		if err != nil {
			return 0, fmt.Errorf("mapbox get drive time cache: %w", err)
		}
		if ok {
			return seconds, nil
		}
	}

	var dr directionsResponse
	if err := m.client.GetJSON(ctx, m.requestURL(home, destination), &dr); err != nil {
		// Transport errors embed the token-bearing URL; keep only the cause.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return 0, fmt.Errorf("directions request failed: %w", err)
	}

	if len(dr.Routes) == 0 {
		return 0, fmt.Errorf("directions %s -> %s (code=%q): %w", home.Key(), destination.Key(), dr.Code, domain.ErrNoRoute)
	}
	seconds := dr.Routes[0].Duration

	if m.cache != nil {
		if err := m.cache.Put(ctx, home, destination, seconds); err != nil {
			log.Warn().Err(err).Str("req_id", obs.RequestID(ctx)).Msg("drive time cache write failed")
		}
	}

	return seconds, nil
}

// requestURL builds driving/{dest};{home}: the route is requested from the destination back home.
func (m *MapboxProvider) requestURL(home, destination domain.Coordinates) string {
	path := fmt.Sprintf("%s/directions/v5/%s/%s,%s;%s,%s",
		m.baseURL, m.profile,
		formatCoord(destination.Lon), formatCoord(destination.Lat),
		formatCoord(home.Lon), formatCoord(home.Lat),
	)

	q := url.Values{}
	q.Set("alternatives", "false")
	q.Set("geometries", "geojson")
	q.Set("overview", "simplified")
	q.Set("steps", "false")
	q.Set("access_token", m.token)

	return path + "?" + q.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
