package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/logger"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	nrpkg "github.com/phantomdigital/truckcheck-sub001/internal/pkg/newrelic"
	"github.com/phantomdigital/truckcheck-sub001/internal/utils"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

const (
	// Half-width of the advisory band around the work diary threshold
	// (95 to 105 km at the default 100 km threshold). The width is part
	// of the product's compliance guidance and must not be re-derived;
	// the band follows the threshold so both always move together.
	nearThresholdBandKm = 5.0

	// Below this straight-line distance a trip counts as a round trip and
	// the furthest-from-base distance is reported instead.
	roundTripFloorKm = 1.0
)

// Evaluate runs one full compliance calculation for the session: resolve
// the base and every unresolved stop, fetch driving metrics, and apply the
// 100 km work diary rule. The inputs are snapshotted at trigger time, so
// concurrent edits to the session do not affect an in-flight calculation;
// the result is only applied to the session while this calculation is
// still the newest one triggered.
func (uc *RouteCheckUC) Evaluate(ctx context.Context, sessionID, userID uuid.UUID) (*models.RouteResult, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	s.calcSeq++
	gen := s.calcSeq
	baseAddress := s.baseAddress
	base := clonePoint(s.base)
	stops := cloneStops(s.stops)
	s.mu.Unlock()

	// Hard bound so the caller is never left waiting indefinitely.
	timeout := time.Duration(uc.cfg.Compliance.CalcTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer nrpkg.StartSegment(ctx, "routecheck.Evaluate")()

	if base == nil && baseAddress == "" {
		return nil, routecheck.ErrBaseNotSet
	}

	// Resolve the base first; it is position 0 in failure reports.
	if base == nil || base.PlaceName != baseAddress {
		pt, err := uc.resolveAddress(ctx, baseAddress)
		if err != nil {
			return nil, &routecheck.StopGeocodeError{Position: 0, Err: err}
		}
		base = pt
	}

	// Resolve stops in order. Sequential resolution keeps the 1-indexed
	// failure position meaningful.
	for i := range stops {
		if !stops[i].NeedsGeocoding() {
			continue
		}

		pt, err := uc.resolveAddress(ctx, stops[i].Address)
		if err != nil {
			return nil, &routecheck.StopGeocodeError{Position: i + 1, Err: err}
		}

		stops[i].Location = pt
		stops[i].Address = pt.PlaceName
	}

	// Straight-line distance is always base -> last stop, never a stop in
	// the middle.
	last := stops[len(stops)-1]
	straight := utils.PointDistanceKm(*base, *last.Location)

	waypoints := make([]models.GeoPoint, len(stops))
	for i, st := range stops {
		waypoints[i] = *st.Location
	}

	var (
		drivingKm *float64
		maxKm     *float64
		geometry  []models.Coordinate
	)

	metrics, err := uc.gw.RouteMetrics(ctx, *base, waypoints)
	if err != nil {
		// No route is not fatal: the threshold decision falls back to the
		// straight-line distance. The provider fault still goes to
		// observability.
		logger.Warn("Route metrics unavailable, falling back to straight-line distance",
			logger.Err(err),
			logger.String("session_id", sessionID.String()))
		nrpkg.NoticeError(ctx, err)
		metrics = nil
	}

	if metrics != nil {
		d := metrics.DistanceKm
		m := metrics.MaxDistanceFromBaseKm
		drivingKm = &d
		maxKm = &m
		geometry = metrics.Geometry
	}

	effective := straight
	if maxKm != nil {
		effective = *maxKm
	}

	// Strict inequality: exactly on the threshold does not require a work
	// diary entry.
	required := effective > uc.cfg.Compliance.ThresholdKm

	// Round-trip correction: a there-and-back trip must not display ~0 km
	// when it clearly went somewhere.
	distance := straight
	if straight < roundTripFloorKm && maxKm != nil && *maxKm > 0 {
		distance = *maxKm
	}

	result := &models.RouteResult{
		DistanceKm:            distance,
		DrivingDistanceKm:     drivingKm,
		MaxDistanceFromBaseKm: maxKm,
		LogbookRequired:       required,
		Advisory:              classifyAdvisory(effective, uc.cfg.Compliance.ThresholdKm),
		BaseLocation:          *base,
		Stops:                 stops,
		Geometry:              geometry,
		CalculatedAt:          time.Now(),
	}

	// Last-write-wins by trigger order: the result applies only while this
	// calculation is still the newest one triggered on the session.
	s.mu.Lock()
	applied := gen == s.calcSeq
	if applied {
		s.result = result
		s.base = clonePoint(base)
		s.baseAddress = base.PlaceName
		s.stops = cloneStops(stops)
	}
	s.mu.Unlock()

	if !applied {
		return nil, routecheck.ErrSuperseded
	}

	uc.persistResult(userID, result)

	return result, nil
}

// classifyAdvisory derives the near-threshold advisory from the same
// effective distance the logbook decision used.
func classifyAdvisory(effectiveKm, thresholdKm float64) models.ThresholdAdvisory {
	if effectiveKm < thresholdKm-nearThresholdBandKm || effectiveKm > thresholdKm+nearThresholdBandKm {
		return models.AdvisoryNone
	}
	if effectiveKm < thresholdKm {
		return models.AdvisoryJustUnder
	}
	return models.AdvisoryJustOver
}

// resolveAddress geocodes one address, validating the input first
func (uc *RouteCheckUC) resolveAddress(ctx context.Context, address string) (*models.GeoPoint, error) {
	if address == "" {
		return nil, routecheck.ErrEmptyAddress
	}

	pt, err := uc.gw.Geocode(ctx, address)
	if err != nil {
		if routecheck.IsGeocodeUnavailable(err) {
			nrpkg.NoticeError(ctx, err)
		}
		return nil, err
	}

	return pt, nil
}

// GeocodeAddress resolves a single free-text address; used by the
// autocomplete surface and depot creation.
func (uc *RouteCheckUC) GeocodeAddress(ctx context.Context, address string) (*models.GeoPoint, error) {
	timeout := time.Duration(uc.cfg.Geocoding.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return uc.resolveAddress(ctx, address)
}

// persistResult saves history, recent searches and publishes the completion
// event. Everything here is fire-and-forget: failures are logged and never
// block the result from reaching the caller.
func (uc *RouteCheckUC) persistResult(userID uuid.UUID, result *models.RouteResult) {
	if userID == uuid.Nil {
		return
	}

	stops := make([]models.RecordStop, len(result.Stops))
	for i, st := range result.Stops {
		stops[i] = models.RecordStop{
			Name: st.Location.PlaceName,
			Lat:  st.Location.Lat,
			Lng:  st.Location.Lng,
		}
	}

	record := &models.CalculationRecord{
		ID:                    uuid.New(),
		UserID:                userID,
		BaseName:              result.BaseLocation.PlaceName,
		BaseLat:               result.BaseLocation.Lat,
		BaseLng:               result.BaseLocation.Lng,
		DistanceKm:            result.DistanceKm,
		DrivingDistanceKm:     result.DrivingDistanceKm,
		MaxDistanceFromBaseKm: result.MaxDistanceFromBaseKm,
		LogbookRequired:       result.LogbookRequired,
		Stops:                 stops,
		CreatedAt:             result.CalculatedAt,
	}

	dest := result.Stops[len(result.Stops)-1].Location
	search := &models.RecentSearch{
		Address:    dest.PlaceName,
		PlaceName:  dest.PlaceName,
		Lat:        dest.Lat,
		Lng:        dest.Lng,
		Geohash:    utils.EncodeLocation(*dest, 6),
		SearchedAt: result.CalculatedAt,
	}

	event := &models.CalculationEvent{
		UserID:          userID,
		BaseName:        record.BaseName,
		DistanceKm:      record.DistanceKm,
		LogbookRequired: record.LogbookRequired,
		StopCount:       len(stops),
		Stops:           stops,
		CalculatedAt:    record.CreatedAt,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := uc.repo.SaveCalculation(ctx, record); err != nil {
			logger.Warn("Failed to save calculation history",
				logger.Err(err),
				logger.String("user_id", userID.String()))
		}

		if err := uc.repo.SaveRecentSearch(ctx, userID, search); err != nil {
			logger.Warn("Failed to save recent search",
				logger.Err(err),
				logger.String("user_id", userID.String()))
		}

		if err := uc.gw.PublishCalculationCompleted(ctx, event); err != nil {
			logger.Warn("Failed to publish calculation event",
				logger.Err(err),
				logger.String("user_id", userID.String()))
		}
	}()
}
