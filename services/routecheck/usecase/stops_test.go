package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

func TestCreateSession_StartsWithOneBlankStop(t *testing.T) {
	f := newUCFixture(t)

	state, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)

	require.Len(t, state.Stops, 1)
	assert.Empty(t, state.Stops[0].Address)
	assert.Nil(t, state.Stops[0].Location)
	assert.Nil(t, state.Result)
}

func TestGetSession_UnknownID(t *testing.T) {
	f := newUCFixture(t)

	_, err := f.uc.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, routecheck.ErrSessionNotFound)
}

func TestAddStop_RequiresEntitlement(t *testing.T) {
	f := newUCFixture(t)

	state, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)

	// Free plan: the single default stop is the cap.
	_, err = f.uc.AddStop(context.Background(), state.ID, false)
	assert.ErrorIs(t, err, routecheck.ErrUpgradeRequired)

	// The failed attempt must not have mutated the session.
	after, err := f.uc.GetSession(context.Background(), state.ID)
	require.NoError(t, err)
	assert.Len(t, after.Stops, 1)

	// Entitled callers can keep adding.
	for i := 0; i < 3; i++ {
		after, err = f.uc.AddStop(context.Background(), state.ID, true)
		require.NoError(t, err)
	}
	assert.Len(t, after.Stops, 4)
}

func TestRemoveStop_KeepsFloorOfOne(t *testing.T) {
	f := newUCFixture(t)

	state, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)

	// Removing the only stop is a no-op, not an error.
	after, err := f.uc.RemoveStop(context.Background(), state.ID, state.Stops[0].ID)
	require.NoError(t, err)
	assert.Len(t, after.Stops, 1)

	state, err = f.uc.AddStop(context.Background(), state.ID, true)
	require.NoError(t, err)
	require.Len(t, state.Stops, 2)

	after, err = f.uc.RemoveStop(context.Background(), state.ID, state.Stops[0].ID)
	require.NoError(t, err)
	require.Len(t, after.Stops, 1)
	assert.Equal(t, state.Stops[1].ID, after.Stops[0].ID)

	_, err = f.uc.RemoveStop(context.Background(), state.ID, uuid.New())
	assert.NoError(t, err) // floor of one applies before the id lookup
}

func TestRemoveStop_UnknownID(t *testing.T) {
	f := newUCFixture(t)

	state, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)
	state, err = f.uc.AddStop(context.Background(), state.ID, true)
	require.NoError(t, err)

	_, err = f.uc.RemoveStop(context.Background(), state.ID, uuid.New())
	assert.ErrorIs(t, err, routecheck.ErrStopNotFound)
}

func TestUpdateStopAddress_ClearsStaleLocation(t *testing.T) {
	f := newUCFixture(t)

	state, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)
	stopID := state.Stops[0].ID

	state, err = f.uc.UpdateStopLocation(context.Background(), state.ID, stopID, melbourne)
	require.NoError(t, err)
	require.NotNil(t, state.Stops[0].Location)
	assert.Equal(t, melbourne.PlaceName, state.Stops[0].Address)

	// Retyping the same canonical text keeps the resolved location.
	state, err = f.uc.UpdateStopAddress(context.Background(), state.ID, stopID, melbourne.PlaceName)
	require.NoError(t, err)
	assert.NotNil(t, state.Stops[0].Location)

	// Any other text invalidates it.
	state, err = f.uc.UpdateStopAddress(context.Background(), state.ID, stopID, "Melbourne")
	require.NoError(t, err)
	assert.Nil(t, state.Stops[0].Location)
	assert.Equal(t, "Melbourne", state.Stops[0].Address)
}

func TestSetBaseAddress_ClearsStaleBase(t *testing.T) {
	f := newUCFixture(t)

	state, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)
	sessionID := state.ID
	dest := melbourne
	_, err = f.uc.UpdateStopLocation(context.Background(), sessionID, state.Stops[0].ID, dest)
	require.NoError(t, err)

	_, err = f.uc.SetBaseAddress(context.Background(), sessionID, sydney.PlaceName)
	require.NoError(t, err)

	f.gw.EXPECT().Geocode(gomock.Any(), sydney.PlaceName).Return(&sydney, nil)
	f.gw.EXPECT().RouteMetrics(gomock.Any(), sydney, gomock.Any()).
		Return(&models.RouteMetrics{DistanceKm: 880.0, MaxDistanceFromBaseKm: 720.0}, nil)

	_, err = f.uc.Evaluate(context.Background(), sessionID, uuid.Nil)
	require.NoError(t, err)

	// Editing the base text after a calculation clears the resolved point.
	state, err = f.uc.SetBaseAddress(context.Background(), sessionID, "Sydney")
	require.NoError(t, err)
	assert.Nil(t, state.Base)
	assert.Equal(t, "Sydney", state.BaseAddress)
}

func TestReorderStops_LastStopBecomesDestination(t *testing.T) {
	f := newUCFixture(t)

	state, err := f.uc.CreateSession(context.Background())
	require.NoError(t, err)
	sessionID := state.ID

	state, err = f.uc.AddStop(context.Background(), sessionID, true)
	require.NoError(t, err)
	state, err = f.uc.AddStop(context.Background(), sessionID, true)
	require.NoError(t, err)
	require.Len(t, state.Stops, 3)

	first := state.Stops[0].ID
	last := state.Stops[2].ID

	state, err = f.uc.ReorderStops(context.Background(), sessionID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, first, state.Stops[2].ID)
	assert.Equal(t, last, state.Stops[1].ID)

	_, err = f.uc.ReorderStops(context.Background(), sessionID, 0, 5)
	assert.Error(t, err)
	_, err = f.uc.ReorderStops(context.Background(), sessionID, -1, 0)
	assert.Error(t, err)
}
