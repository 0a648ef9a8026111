package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/internal/utils"
)

// routeSampleTarget caps how many geometry points are measured against the
// base when deriving the maximum distance from base.
const routeSampleTarget = 20

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
	} `json:"routes"`
}

// RouteMetrics fetches driving metrics for base -> waypoints in order. The
// returned max-distance-from-base is derived by sampling the route
// geometry, so a route that loops far out and returns is still measured at
// its furthest point.
func (g *HTTPGateway) RouteMetrics(ctx context.Context, base models.GeoPoint, waypoints []models.GeoPoint) (*models.RouteMetrics, error) {
	coords := make([]string, 0, len(waypoints)+1)
	coords = append(coords, formatLngLat(base))
	for _, wp := range waypoints {
		coords = append(coords, formatLngLat(wp))
	}

	endpoint := fmt.Sprintf("/%s/%s?access_token=%s&geometries=geojson&overview=full",
		url.PathEscape(g.routeCfg.Profile),
		strings.Join(coords, ";"),
		url.QueryEscape(g.routeCfg.APIKey))

	var resp directionsResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.routeClient.GetJSON(ctx, endpoint, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch directions: %w", err)
	}

	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("no drivable route found")
	}

	route := resp.Routes[0]

	geometry := make([]models.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, c := range route.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		geometry = append(geometry, models.Coordinate{Lng: c[0], Lat: c[1]})
	}

	return &models.RouteMetrics{
		DistanceKm:            route.Distance / 1000.0,
		MaxDistanceFromBaseKm: maxDistanceFromBase(base, geometry),
		Geometry:              geometry,
	}, nil
}

// maxDistanceFromBase samples the route geometry at a fixed stride and
// returns the furthest sampled point's distance from base. The final
// coordinate is always measured so a route ending far away is never
// missed by the stride.
func maxDistanceFromBase(base models.GeoPoint, geometry []models.Coordinate) float64 {
	if len(geometry) == 0 {
		return 0
	}

	stride := len(geometry) / routeSampleTarget
	if stride < 1 {
		stride = 1
	}

	max := 0.0
	for i := 0; i < len(geometry); i += stride {
		d := utils.DistanceKm(base.Lat, base.Lng, geometry[i].Lat, geometry[i].Lng)
		if d > max {
			max = d
		}
	}

	last := geometry[len(geometry)-1]
	if d := utils.DistanceKm(base.Lat, base.Lng, last.Lat, last.Lng); d > max {
		max = d
	}

	return max
}

func formatLngLat(p models.GeoPoint) string {
	return strconv.FormatFloat(p.Lng, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lat, 'f', 6, 64)
}
