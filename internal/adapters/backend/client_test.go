package backend

import (
	"context"
	"errors"
	"fmt"
	"hiking-map-service/internal/domain"
	"hiking-map-service/internal/platform/httpx"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/mapbox_token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `"pk.from-backend"`)
	})
	mux.HandleFunc("/static/hiking.geojson", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"type":"FeatureCollection","features":[
			{"geometry":{"coordinates":[-118.0,46.1]},"properties":{"title":"A","miles":"2","description":"d"}}
		]}`)
	})
	mux.HandleFunc("/pollution", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "46.1", r.URL.Query().Get("lat"))
		assert.Equal(t, "-118", r.URL.Query().Get("lon"))
		fmt.Fprint(w, `[2,2,3]`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	srv := newBackend(t)
	c, err := NewClient(srv.URL + "/")
	require.NoError(t, err)
	ctx := context.Background()

	token, err := c.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pk.from-backend", token)

	fs, err := c.Features(ctx)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, domain.Coordinates{Lon: -118.0, Lat: 46.1}, fs[0].Coordinates)

	aqi, err := c.AirQuality(ctx, fs[0].Coordinates)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 3}, aqi)
}

func TestClientFeaturesNotFound(t *testing.T) {
	srv := newBackend(t)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	c.FeaturesPath = "/static/missing.geojson"

	_, err = c.Features(context.Background())
	var se *httpx.StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Body, "not found")
}

func TestClientFeaturesRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"type":"FeatureCollection","features":[
			{"geometry":{"coordinates":[-117.9,46.0]},"properties":{"title":"B","miles":3}}
		]}`)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	c.http.Backoff = time.Millisecond

	fs, err := c.Features(context.Background())
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, "B", fs[0].Title)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(" ")
	assert.Error(t, err)
}
