package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

func newTestGateway(geocodeURL, routeURL string) *HTTPGateway {
	return NewHTTPGateway(
		models.GeocodingConfig{BaseURL: geocodeURL, APIKey: "test-key", Country: "au", TimeoutSeconds: 5},
		models.RoutingConfig{BaseURL: routeURL, APIKey: "test-key", Profile: "driving", TimeoutSeconds: 5},
	)
}

func TestGeocode_ReturnsBestMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "au", r.URL.Query().Get("country"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [
				{"place_name": "Sydney NSW, Australia", "center": [151.2093, -33.8688]}
			]
		}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, server.URL)

	point, err := gw.Geocode(context.Background(), "Sydney")
	require.NoError(t, err)

	assert.Equal(t, "Sydney NSW, Australia", point.PlaceName)
	assert.Equal(t, -33.8688, point.Lat)
	assert.Equal(t, 151.2093, point.Lng)
}

func TestGeocode_NoMatchIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, server.URL)

	_, err := gw.Geocode(context.Background(), "xyzzy nowhere")
	assert.True(t, routecheck.IsGeocodeNotFound(err))
	assert.Contains(t, err.Error(), "could not find location")
}

func TestGeocode_ServerFaultIsUnavailableAfterRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, server.URL)

	_, err := gw.Geocode(context.Background(), "Sydney")
	assert.True(t, routecheck.IsGeocodeUnavailable(err))
	assert.Greater(t, calls, 1)
}

func TestGeocode_ClientErrorIsNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, server.URL)

	_, err := gw.Geocode(context.Background(), "Sydney")
	assert.True(t, routecheck.IsGeocodeUnavailable(err))
	assert.Equal(t, 1, calls)
}
