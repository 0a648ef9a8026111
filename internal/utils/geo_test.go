package utils

import (
	"testing"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SydneyToMelbourne(t *testing.T) {
	// Sydney -> Melbourne great-circle distance is roughly 713.4 km
	d := DistanceKm(-33.8688, 151.2093, -37.8136, 144.9631)
	assert.InDelta(t, 713.4, d, 1.0)
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{-33.8688, 151.2093, -37.8136, 144.9631},
		{-27.4698, 153.0251, -34.9285, 138.6007},
		{0, 0, 45, 90},
		{-35.2809, 149.1300, -35.2810, 149.1301},
	}

	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(-33.8688, 151.2093, -33.8688, 151.2093))
	assert.Equal(t, 0.0, DistanceKm(0, 0, 0, 0))
}

func TestPointDistanceKm(t *testing.T) {
	sydney := models.GeoPoint{Lat: -33.8688, Lng: 151.2093, PlaceName: "Sydney, NSW"}
	melbourne := models.GeoPoint{Lat: -37.8136, Lng: 144.9631, PlaceName: "Melbourne, VIC"}

	assert.InDelta(t, 713.4, PointDistanceKm(sydney, melbourne), 1.0)
}

func TestEncodeLocation(t *testing.T) {
	sydney := models.GeoPoint{Lat: -33.8688, Lng: 151.2093}

	hash := EncodeLocation(sydney, 6)
	assert.Len(t, hash, 6)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, sydney.Lat, lat, 0.01)
	assert.InDelta(t, sydney.Lng, lng, 0.01)
}
