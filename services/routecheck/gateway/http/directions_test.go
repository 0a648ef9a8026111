package gateway_http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

func TestRouteMetrics_ParsesRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Waypoints travel as lng,lat pairs joined by semicolons.
		assert.True(t, strings.Contains(r.URL.Path, ";"))
		assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"routes": [{
				"distance": 880450.0,
				"geometry": {"coordinates": [
					[151.2093, -33.8688],
					[150.3115, -33.7507],
					[144.9631, -37.8136]
				]}
			}]
		}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, server.URL)

	base := models.GeoPoint{Lat: -33.8688, Lng: 151.2093}
	dest := models.GeoPoint{Lat: -37.8136, Lng: 144.9631}

	metrics, err := gw.RouteMetrics(context.Background(), base, []models.GeoPoint{dest})
	require.NoError(t, err)

	assert.InDelta(t, 880.45, metrics.DistanceKm, 0.001)
	assert.Len(t, metrics.Geometry, 3)
	// The final coordinate is ~713 km from base and must be the maximum.
	assert.InDelta(t, 713.4, metrics.MaxDistanceFromBaseKm, 2.0)
}

func TestRouteMetrics_NoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes": []}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL, server.URL)

	_, err := gw.RouteMetrics(context.Background(),
		models.GeoPoint{Lat: -33.8688, Lng: 151.2093},
		[]models.GeoPoint{{Lat: -37.8136, Lng: 144.9631}})
	assert.Error(t, err)
}

func TestMaxDistanceFromBase_SamplingAlwaysMeasuresFinalPoint(t *testing.T) {
	base := models.GeoPoint{Lat: -33.8688, Lng: 151.2093}

	// 99 points at the base, final point far away. With ~1/20 sampling the
	// final point would be missed without the explicit last-point check.
	geometry := make([]models.Coordinate, 0, 100)
	for i := 0; i < 99; i++ {
		geometry = append(geometry, models.Coordinate{Lat: base.Lat, Lng: base.Lng})
	}
	geometry = append(geometry, models.Coordinate{Lat: -37.8136, Lng: 144.9631})

	max := maxDistanceFromBase(base, geometry)
	assert.InDelta(t, 713.4, max, 2.0)
}

func TestMaxDistanceFromBase_LoopRoute(t *testing.T) {
	base := models.GeoPoint{Lat: -33.8688, Lng: 151.2093}

	// Out ~1.1 degrees of latitude and back to base: the furthest sampled
	// point governs, not the endpoint.
	geometry := []models.Coordinate{}
	for i := 0; i <= 10; i++ {
		geometry = append(geometry, models.Coordinate{Lat: base.Lat - float64(i)*0.11, Lng: base.Lng})
	}
	for i := 10; i >= 0; i-- {
		geometry = append(geometry, models.Coordinate{Lat: base.Lat - float64(i)*0.11, Lng: base.Lng})
	}

	max := maxDistanceFromBase(base, geometry)
	assert.InDelta(t, 122.3, max, 1.0)
}

func TestMaxDistanceFromBase_Empty(t *testing.T) {
	assert.Equal(t, 0.0, maxDistanceFromBase(models.GeoPoint{}, nil))
}

func TestFormatLngLat(t *testing.T) {
	got := formatLngLat(models.GeoPoint{Lat: -33.8688, Lng: 151.2093})
	assert.Equal(t, fmt.Sprintf("%s,%s", "151.209300", "-33.868800"), got)
}
