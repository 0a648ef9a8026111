package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the haversine formula. Pure and symmetric.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180.0
	rlon1 := lon1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlon2 := lon2 * math.Pi / 180.0

	dLat := rlat2 - rlat1
	dLon := rlon2 - rlon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// PointDistanceKm is DistanceKm over GeoPoints.
func PointDistanceKm(a, b models.GeoPoint) float64 {
	return DistanceKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

// EncodeLocation converts a point to a geohash string. Recent-search
// deduplication keys use precision 6 (~1.2 km cells), enough to collapse
// repeated lookups of the same suburb.
func EncodeLocation(point models.GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Lat, point.Lng, precision)
}

// DecodeGeohash converts a geohash string back to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
