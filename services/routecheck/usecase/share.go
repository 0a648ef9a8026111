package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

var errMalformedShare = errors.New("malformed share link")

// EncodeShare flattens a calculation result into query parameters for a
// share link. Coordinates use the shortest decimal form that round-trips
// exactly, so a decoded link reproduces the same result bit for bit.
func (uc *RouteCheckUC) EncodeShare(result *models.RouteResult) url.Values {
	values := url.Values{}
	values.Set("baseName", result.BaseLocation.PlaceName)
	values.Set("baseLat", formatCoord(result.BaseLocation.Lat))
	values.Set("baseLng", formatCoord(result.BaseLocation.Lng))
	values.Set("distance", formatCoord(result.DistanceKm))
	values.Set("logbookRequired", strconv.FormatBool(result.LogbookRequired))

	// Keys stay contiguous from stop0 even when an unresolved stop is
	// skipped; the decoder stops at the first missing index.
	n := 0
	for _, stop := range result.Stops {
		if stop.Location == nil {
			continue
		}
		values.Set(fmt.Sprintf("stop%dName", n), stop.Location.PlaceName)
		values.Set(fmt.Sprintf("stop%dLat", n), formatCoord(stop.Location.Lat))
		values.Set(fmt.Sprintf("stop%dLng", n), formatCoord(stop.Location.Lng))
		n++
	}

	return values
}

// DecodeShare rebuilds a result from share link parameters. Stops are read
// as stop0, stop1, ... until the first gap. A multi-stop link opened
// without the multi-stop entitlement is still shown in full; only editing
// is disabled.
func (uc *RouteCheckUC) DecodeShare(values url.Values, entitled bool) (*models.SharedResult, error) {
	baseName := values.Get("baseName")
	if baseName == "" {
		return nil, errMalformedShare
	}

	baseLat, err := parseCoord(values.Get("baseLat"))
	if err != nil {
		return nil, errMalformedShare
	}
	baseLng, err := parseCoord(values.Get("baseLng"))
	if err != nil {
		return nil, errMalformedShare
	}
	distance, err := parseCoord(values.Get("distance"))
	if err != nil {
		return nil, errMalformedShare
	}
	required, err := strconv.ParseBool(values.Get("logbookRequired"))
	if err != nil {
		return nil, errMalformedShare
	}

	var stops []models.Stop
	for n := 0; ; n++ {
		name := values.Get(fmt.Sprintf("stop%dName", n))
		if name == "" {
			break
		}

		lat, err := parseCoord(values.Get(fmt.Sprintf("stop%dLat", n)))
		if err != nil {
			return nil, errMalformedShare
		}
		lng, err := parseCoord(values.Get(fmt.Sprintf("stop%dLng", n)))
		if err != nil {
			return nil, errMalformedShare
		}

		stops = append(stops, models.Stop{
			Address: name,
			Location: &models.GeoPoint{
				Lat:       lat,
				Lng:       lng,
				PlaceName: name,
			},
		})
	}
	if len(stops) == 0 {
		return nil, errMalformedShare
	}

	return &models.SharedResult{
		Result: models.RouteResult{
			DistanceKm:      distance,
			LogbookRequired: required,
			BaseLocation: models.GeoPoint{
				Lat:       baseLat,
				Lng:       baseLng,
				PlaceName: baseName,
			},
			Stops: stops,
		},
		EditDisabled: !entitled && len(stops) > 1,
	}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseCoord(s string) (float64, error) {
	if s == "" {
		return 0, errMalformedShare
	}
	return strconv.ParseFloat(s, 64)
}
