package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// AddStop appends a blank stop to the session. Multi-stop trips are a paid
// capability: the entitlement check runs here, before any mutation, because
// this is a trust boundary rather than a display preference.
func (uc *RouteCheckUC) AddStop(ctx context.Context, sessionID uuid.UUID, entitled bool) (*models.SessionState, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !entitled && len(s.stops) >= 1 {
		return nil, routecheck.ErrUpgradeRequired
	}

	s.stops = append(s.stops, models.Stop{ID: uuid.New()})

	return s.snapshot(), nil
}

// RemoveStop removes a stop by id. Removing the only remaining stop is a
// no-op; the stop list keeps a floor of one.
func (uc *RouteCheckUC) RemoveStop(ctx context.Context, sessionID, stopID uuid.UUID) (*models.SessionState, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stops) <= 1 {
		return s.snapshot(), nil
	}

	idx := -1
	for i, st := range s.stops {
		if st.ID == stopID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, routecheck.ErrStopNotFound
	}

	s.stops = append(s.stops[:idx], s.stops[idx+1:]...)

	return s.snapshot(), nil
}

// UpdateStopAddress sets a stop's raw address text. The geocoded location
// is cleared whenever the text no longer matches the location's place name
// exactly; that mismatch is the signal the stop needs re-geocoding.
func (uc *RouteCheckUC) UpdateStopAddress(ctx context.Context, sessionID, stopID uuid.UUID, address string) (*models.SessionState, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stops {
		if s.stops[i].ID != stopID {
			continue
		}

		s.stops[i].Address = address
		if s.stops[i].Location != nil && s.stops[i].Location.PlaceName != address {
			s.stops[i].Location = nil
		}

		return s.snapshot(), nil
	}

	return nil, routecheck.ErrStopNotFound
}

// UpdateStopLocation sets a stop's geocoded location directly, after a
// successful lookup. The address text is aligned to the canonical place
// name so the stop no longer reads as needing re-geocoding.
func (uc *RouteCheckUC) UpdateStopLocation(ctx context.Context, sessionID, stopID uuid.UUID, point models.GeoPoint) (*models.SessionState, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stops {
		if s.stops[i].ID != stopID {
			continue
		}

		pt := point
		s.stops[i].Location = &pt
		s.stops[i].Address = point.PlaceName

		return s.snapshot(), nil
	}

	return nil, routecheck.ErrStopNotFound
}

// ReorderStops moves a stop from one index to another. The final
// destination role is positional: whatever ends up last becomes the
// destination for straight-line distance purposes.
func (uc *RouteCheckUC) ReorderStops(ctx context.Context, sessionID uuid.UUID, fromIndex, toIndex int) (*models.SessionState, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, routecheck.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.stops)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return nil, fmt.Errorf("reorder indexes out of range: %d -> %d with %d stops", fromIndex, toIndex, n)
	}

	if fromIndex != toIndex {
		moved := s.stops[fromIndex]
		s.stops = append(s.stops[:fromIndex], s.stops[fromIndex+1:]...)

		rest := make([]models.Stop, 0, n)
		rest = append(rest, s.stops[:toIndex]...)
		rest = append(rest, moved)
		rest = append(rest, s.stops[toIndex:]...)
		s.stops = rest
	}

	return s.snapshot(), nil
}
