package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

func TestHistory_UsesConfiguredLimit(t *testing.T) {
	f := newUCFixture(t)
	userID := uuid.New()

	f.repo.EXPECT().ListCalculations(gomock.Any(), userID, 50).
		Return([]models.CalculationRecord{{UserID: userID}}, nil)

	records, err := f.uc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCreateDepot_GeocodesWhenCoordsMissing(t *testing.T) {
	f := newUCFixture(t)
	userID := uuid.New()

	f.gw.EXPECT().Geocode(gomock.Any(), "1 Depot Rd Sydney").Return(&sydney, nil)
	f.repo.EXPECT().CreateDepot(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishDepotCreated(gomock.Any(), gomock.Any()).Return(nil)

	depot := &models.Depot{
		UserID:  userID,
		Name:    "Main yard",
		Address: "1 Depot Rd Sydney",
	}

	err := f.uc.CreateDepot(context.Background(), depot)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, depot.ID)
	assert.Equal(t, sydney.Lat, depot.Lat)
	assert.Equal(t, sydney.Lng, depot.Lng)
	assert.Equal(t, sydney.PlaceName, depot.Address)
}

func TestCreateDepot_SkipsGeocodeWithCoords(t *testing.T) {
	f := newUCFixture(t)

	f.repo.EXPECT().CreateDepot(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishDepotCreated(gomock.Any(), gomock.Any()).Return(nil)

	depot := &models.Depot{
		UserID:  uuid.New(),
		Name:    "Main yard",
		Address: "1 Depot Rd Sydney",
		Lat:     sydney.Lat,
		Lng:     sydney.Lng,
	}

	require.NoError(t, f.uc.CreateDepot(context.Background(), depot))
}

func TestCreateDepot_PublishFailureIsNotFatal(t *testing.T) {
	f := newUCFixture(t)

	f.repo.EXPECT().CreateDepot(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishDepotCreated(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	depot := &models.Depot{
		UserID:  uuid.New(),
		Name:    "Main yard",
		Address: "1 Depot Rd Sydney",
		Lat:     sydney.Lat,
		Lng:     sydney.Lng,
	}

	assert.NoError(t, f.uc.CreateDepot(context.Background(), depot))
}

func TestDeleteDepot_PublishesEvent(t *testing.T) {
	f := newUCFixture(t)
	userID := uuid.New()
	depotID := uuid.New()

	f.repo.EXPECT().DeleteDepot(gomock.Any(), userID, depotID).Return(nil)
	f.gw.EXPECT().PublishDepotDeleted(gomock.Any(), userID, depotID).Return(nil)

	assert.NoError(t, f.uc.DeleteDepot(context.Background(), userID, depotID))
}

func TestDeleteDepot_RepoFailureSkipsEvent(t *testing.T) {
	f := newUCFixture(t)
	userID := uuid.New()
	depotID := uuid.New()

	f.repo.EXPECT().DeleteDepot(gomock.Any(), userID, depotID).
		Return(errors.New("depot not found"))

	assert.Error(t, f.uc.DeleteDepot(context.Background(), userID, depotID))
}

func TestRecentSearches_UsesConfiguredLimit(t *testing.T) {
	f := newUCFixture(t)
	userID := uuid.New()

	f.repo.EXPECT().ListRecentSearches(gomock.Any(), userID, 20).
		Return([]models.RecentSearch{{PlaceName: melbourne.PlaceName}}, nil)

	searches, err := f.uc.RecentSearches(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, searches, 1)
	assert.Equal(t, melbourne.PlaceName, searches[0].PlaceName)
}
