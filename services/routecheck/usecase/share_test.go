package usecase

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

func sampleResult() *models.RouteResult {
	return &models.RouteResult{
		DistanceKm:      713.4421871,
		LogbookRequired: true,
		BaseLocation:    sydney,
		Stops: []models.Stop{
			{Address: parramatta.PlaceName, Location: &parramatta},
			{Address: melbourne.PlaceName, Location: &melbourne},
		},
	}
}

func TestShareCodec_RoundTripIsLossless(t *testing.T) {
	f := newUCFixture(t)
	result := sampleResult()

	values := f.uc.EncodeShare(result)

	// Through a real query string, as a shared link would travel.
	parsed, err := url.ParseQuery(values.Encode())
	require.NoError(t, err)

	shared, err := f.uc.DecodeShare(parsed, true)
	require.NoError(t, err)

	assert.Equal(t, result.DistanceKm, shared.Result.DistanceKm)
	assert.Equal(t, result.LogbookRequired, shared.Result.LogbookRequired)
	assert.Equal(t, result.BaseLocation.Lat, shared.Result.BaseLocation.Lat)
	assert.Equal(t, result.BaseLocation.Lng, shared.Result.BaseLocation.Lng)
	assert.Equal(t, result.BaseLocation.PlaceName, shared.Result.BaseLocation.PlaceName)

	require.Len(t, shared.Result.Stops, 2)
	for i, stop := range shared.Result.Stops {
		assert.Equal(t, result.Stops[i].Location.Lat, stop.Location.Lat)
		assert.Equal(t, result.Stops[i].Location.Lng, stop.Location.Lng)
		assert.Equal(t, result.Stops[i].Location.PlaceName, stop.Location.PlaceName)
	}
	assert.False(t, shared.EditDisabled)
}

func TestEncodeShare_StopKeysAreZeroBased(t *testing.T) {
	f := newUCFixture(t)

	values := f.uc.EncodeShare(sampleResult())

	assert.Equal(t, parramatta.PlaceName, values.Get("stop0Name"))
	assert.Equal(t, "-33.8151", values.Get("stop0Lat"))
	assert.Equal(t, melbourne.PlaceName, values.Get("stop1Name"))
	assert.Equal(t, "-37.8136", values.Get("stop1Lat"))
	assert.Equal(t, "144.9631", values.Get("stop1Lng"))
	assert.False(t, values.Has("stop2Name"))
}

func TestDecodeShare_BookmarkedLinkFormat(t *testing.T) {
	f := newUCFixture(t)

	// Hand-built link in the published format, not one we encoded.
	parsed, err := url.ParseQuery("baseName=Sydney, NSW&baseLat=-33.8688&baseLng=151.2093" +
		"&distance=713.4&logbookRequired=true" +
		"&stop0Name=Melbourne, VIC&stop0Lat=-37.8136&stop0Lng=144.9631")
	require.NoError(t, err)

	shared, err := f.uc.DecodeShare(parsed, true)
	require.NoError(t, err)

	require.Len(t, shared.Result.Stops, 1)
	assert.Equal(t, "Melbourne, VIC", shared.Result.Stops[0].Location.PlaceName)
	assert.Equal(t, -37.8136, shared.Result.Stops[0].Location.Lat)
	assert.True(t, shared.Result.LogbookRequired)
}

func TestEncodeShare_UnresolvedStopDoesNotLeaveGap(t *testing.T) {
	f := newUCFixture(t)
	result := sampleResult()
	result.Stops = []models.Stop{
		result.Stops[0],
		{Address: "somewhere pending"},
		result.Stops[1],
	}

	values := f.uc.EncodeShare(result)

	// The unresolved middle stop is skipped and the keys stay contiguous,
	// so the stop after it survives the round trip.
	assert.Equal(t, parramatta.PlaceName, values.Get("stop0Name"))
	assert.Equal(t, melbourne.PlaceName, values.Get("stop1Name"))
	assert.False(t, values.Has("stop2Name"))

	shared, err := f.uc.DecodeShare(values, true)
	require.NoError(t, err)
	require.Len(t, shared.Result.Stops, 2)
	assert.Equal(t, melbourne.PlaceName, shared.Result.Stops[1].Location.PlaceName)
}

func TestDecodeShare_MultiStopWithoutEntitlement(t *testing.T) {
	f := newUCFixture(t)
	values := f.uc.EncodeShare(sampleResult())

	shared, err := f.uc.DecodeShare(values, false)
	require.NoError(t, err)

	// The shared route is shown in full; only editing is locked.
	require.Len(t, shared.Result.Stops, 2)
	assert.True(t, shared.EditDisabled)
}

func TestDecodeShare_SingleStopNeverLocked(t *testing.T) {
	f := newUCFixture(t)
	result := sampleResult()
	result.Stops = result.Stops[1:]

	shared, err := f.uc.DecodeShare(f.uc.EncodeShare(result), false)
	require.NoError(t, err)

	require.Len(t, shared.Result.Stops, 1)
	assert.False(t, shared.EditDisabled)
}

func TestDecodeShare_StopsReadUntilFirstGap(t *testing.T) {
	f := newUCFixture(t)
	values := f.uc.EncodeShare(sampleResult())

	// A gap at stop1 hides stop2 even if present.
	values.Del("stop1Name")
	values.Del("stop1Lat")
	values.Del("stop1Lng")
	values.Set("stop2Name", melbourne.PlaceName)
	values.Set("stop2Lat", "-37.8136")
	values.Set("stop2Lng", "144.9631")

	shared, err := f.uc.DecodeShare(values, true)
	require.NoError(t, err)
	assert.Len(t, shared.Result.Stops, 1)
}

func TestDecodeShare_Malformed(t *testing.T) {
	f := newUCFixture(t)

	tests := []struct {
		name   string
		mutate func(url.Values)
	}{
		{name: "missing base name", mutate: func(v url.Values) { v.Del("baseName") }},
		{name: "missing base coords", mutate: func(v url.Values) { v.Del("baseLat") }},
		{name: "unparseable distance", mutate: func(v url.Values) { v.Set("distance", "far") }},
		{name: "unparseable flag", mutate: func(v url.Values) { v.Set("logbookRequired", "maybe") }},
		{name: "no stops", mutate: func(v url.Values) {
			for _, k := range []string{"stop0Name", "stop0Lat", "stop0Lng", "stop1Name", "stop1Lat", "stop1Lng"} {
				v.Del(k)
			}
		}},
		{name: "stop with bad coordinate", mutate: func(v url.Values) { v.Set("stop0Lat", "north") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := f.uc.EncodeShare(sampleResult())
			tt.mutate(values)

			_, err := f.uc.DecodeShare(values, true)
			assert.Error(t, err)
		})
	}
}
