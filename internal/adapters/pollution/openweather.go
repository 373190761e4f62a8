package pollution

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/httpx"
	"hiking-map-service/internal/platform/obs"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

type airPollutionResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// OpenWeatherProvider implements PollutionProvider with the OpenWeather air pollution
// forecast API. It holds the API key and only runs on the backend.
type OpenWeatherProvider struct {
	client  *httpx.Client
	apiKey  string
	baseURL string
}

func NewOpenWeatherProvider(apiKey string, baseURL string) (*OpenWeatherProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openweather api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}

	return &OpenWeatherProvider{
		client:  httpx.NewClient(10 * time.Second),
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// AirQuality returns the hourly AQI forecast (1..5) in chronological order.
func (o *OpenWeatherProvider) AirQuality(ctx context.Context, at domain.Coordinates) (_ []int, err error) {
	defer obs.Time(ctx, "openweather.AirQuality")(&err)

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("appid", o.apiKey)
	endpoint := o.baseURL + "/data/2.5/air_pollution/forecast?" + q.Encode()

	var ar airPollutionResponse
	if err := o.client.GetJSON(ctx, endpoint, &ar); err != nil {
		// Transport errors embed the key-bearing URL; keep only the cause.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return nil, fmt.Errorf("air pollution request for %s: %w", at.Key(), err)
	}

	out := make([]int, 0, len(ar.List))
	for _, e := range ar.List {
		out = append(out, e.Main.AQI)
	}

	return out, nil
}
