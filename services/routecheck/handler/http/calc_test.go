package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/middleware"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck/mocks"
)

func newCalcContext(t *testing.T, sessionID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/calculate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())
	return c, rec
}

func TestCalculate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRouteCheckUC(ctrl)
	h := NewCalcHandler(uc)

	sessionID := uuid.New()
	userID := uuid.New()

	uc.EXPECT().Evaluate(gomock.Any(), sessionID, userID).
		Return(&models.RouteResult{DistanceKm: 120.5, LogbookRequired: true}, nil)

	c, rec := newCalcContext(t, sessionID)
	c.Set(middleware.ContextUserID, userID)

	require.NoError(t, h.Calculate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"logbook_required":true`)
}

func TestCalculate_AnonymousPassesNilUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRouteCheckUC(ctrl)
	h := NewCalcHandler(uc)

	sessionID := uuid.New()

	uc.EXPECT().Evaluate(gomock.Any(), sessionID, uuid.Nil).
		Return(&models.RouteResult{DistanceKm: 42.0}, nil)

	c, rec := newCalcContext(t, sessionID)

	require.NoError(t, h.Calculate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalculate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "unknown session",
			err:      routecheck.ErrSessionNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "base not set",
			err:      routecheck.ErrBaseNotSet,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "address the user can fix",
			err: &routecheck.StopGeocodeError{
				Position: 1,
				Err:      &routecheck.GeocodeError{Kind: routecheck.GeocodeNotFound, Address: "xyzzy"},
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "provider fault",
			err: &routecheck.StopGeocodeError{
				Position: 0,
				Err:      &routecheck.GeocodeError{Kind: routecheck.GeocodeUnavailable, Address: "Sydney"},
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "superseded is not a failure",
			err:      routecheck.ErrSuperseded,
			wantCode: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockRouteCheckUC(ctrl)
			h := NewCalcHandler(uc)

			sessionID := uuid.New()
			uc.EXPECT().Evaluate(gomock.Any(), sessionID, uuid.Nil).Return(nil, tt.err)

			c, rec := newCalcContext(t, sessionID)

			require.NoError(t, h.Calculate(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAddStop_UpgradeRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRouteCheckUC(ctrl)
	h := NewSessionHandler(uc)

	sessionID := uuid.New()
	uc.EXPECT().AddStop(gomock.Any(), sessionID, false).
		Return(nil, routecheck.ErrUpgradeRequired)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/stops", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())
	c.Set(middleware.ContextEntitled, false)

	require.NoError(t, h.AddStop(c))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestUpdateStopAddress_BindsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRouteCheckUC(ctrl)
	h := NewSessionHandler(uc)

	sessionID := uuid.New()
	stopID := uuid.New()

	uc.EXPECT().UpdateStopAddress(gomock.Any(), sessionID, stopID, "Newcastle NSW").
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ string) (*models.SessionState, error) {
			return &models.SessionState{ID: sessionID}, nil
		})

	body, _ := json.Marshal(map[string]string{"address": "Newcastle NSW"})
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "stopId")
	c.SetParamValues(sessionID.String(), stopID.String())

	require.NoError(t, h.UpdateStopAddress(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
