package backend

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/adapters/features"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/httpx"
	"hiking-map-service/internal/platform/obs"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the hiking map backend: it retrieves the map token, the static
// feature collection and proxied air-quality data. Third-party keys stay server side.
type Client struct {
	http         *httpx.Client
	baseURL      string
	FeaturesPath string
}

func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base url is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("backend base url: %w", err)
	}

	return &Client{
		http:         httpx.NewClient(10 * time.Second),
		baseURL:      baseURL,
		FeaturesPath: "/static/hiking.geojson",
	}, nil
}

// Token fetches the map access token.
func (c *Client) Token(ctx context.Context) (_ string, err error) {
	defer obs.Time(ctx, "backend.Token")(&err)

	var token string
	if err := c.http.GetJSON(ctx, c.baseURL+"/mapbox_token", &token); err != nil {
		return "", fmt.Errorf("fetch token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return "", errors.New("fetch token: backend returned an empty token")
	}

	return token, nil
}

// Features fetches and decodes the static feature collection.
func (c *Client) Features(ctx context.Context) (_ []domain.Feature, err error) {
	defer obs.Time(ctx, "backend.Features")(&err)

	body, err := c.http.Get(ctx, c.baseURL+c.FeaturesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch features: %w", err)
	}
	defer body.Close()

	return features.Decode(body)
}

// AirQuality implements PollutionProvider through the backend proxy.
func (c *Client) AirQuality(ctx context.Context, at domain.Coordinates) (_ []int, err error) {
	defer obs.Time(ctx, "backend.AirQuality")(&err)

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))

	var aqi []int
	if err := c.http.GetJSON(ctx, c.baseURL+"/pollution?"+q.Encode(), &aqi); err != nil {
		return nil, fmt.Errorf("proxied pollution for %s: %w", at.Key(), err)
	}

	return aqi, nil
}
