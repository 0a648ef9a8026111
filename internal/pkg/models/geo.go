package models

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint is a geocoded location. It is produced by the geocoding gateway
// (or restored from a share URL / history record) and never mutated in place:
// when the user changes an address the point is replaced wholesale.
type GeoPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	PlaceName string  `json:"place_name"`
}

// Coordinate is a single vertex of a route geometry line.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is one entry in a trip's ordered stop sequence. Location stays nil
// until the address has been geocoded, and is cleared again whenever the
// address is edited to text that no longer matches Location.PlaceName —
// that mismatch is the authoritative "needs re-geocoding" signal.
type Stop struct {
	ID       uuid.UUID `json:"id"`
	Address  string    `json:"address"`
	Location *GeoPoint `json:"location,omitempty"`
}

// NeedsGeocoding reports whether the stop's address must be resolved before
// it can participate in a route calculation.
func (s *Stop) NeedsGeocoding() bool {
	return s.Location == nil || s.Address != s.Location.PlaceName
}

// RouteMetrics is what the routing provider returns for a base plus an
// ordered waypoint sequence.
type RouteMetrics struct {
	DistanceKm            float64      `json:"distance_km"`
	MaxDistanceFromBaseKm float64      `json:"max_distance_from_base_km"`
	Geometry              []Coordinate `json:"geometry"`
}

// ThresholdAdvisory classifies results that land near the 100 km work diary
// threshold. It is presentation-only and never changes LogbookRequired.
type ThresholdAdvisory string

const (
	AdvisoryNone      ThresholdAdvisory = ""
	AdvisoryJustUnder ThresholdAdvisory = "just_under"
	AdvisoryJustOver  ThresholdAdvisory = "just_over"
)

// RouteResult is the complete outcome of one compliance calculation. It is
// immutable once produced and replaces any prior result in full; downstream
// consumers (handlers, share codec, history) treat it as read-only.
type RouteResult struct {
	DistanceKm            float64           `json:"distance_km"`
	DrivingDistanceKm     *float64          `json:"driving_distance_km"`
	MaxDistanceFromBaseKm *float64          `json:"max_distance_from_base_km"`
	LogbookRequired       bool              `json:"logbook_required"`
	Advisory              ThresholdAdvisory `json:"advisory,omitempty"`
	BaseLocation          GeoPoint          `json:"base_location"`
	Stops                 []Stop            `json:"stops"`
	Geometry              []Coordinate      `json:"geometry,omitempty"`
	CalculatedAt          time.Time         `json:"calculated_at"`
}

// SharedResult is a RouteResult restored from a share URL. EditDisabled is
// set when the decoded trip has more stops than the viewer's plan allows:
// the result still renders in full, only recalculation is blocked.
type SharedResult struct {
	Result       RouteResult `json:"result"`
	EditDisabled bool        `json:"edit_disabled"`
}

// SessionState is a snapshot of a trip session handed to handlers. The live
// session object stays owned by the usecase.
type SessionState struct {
	ID          uuid.UUID    `json:"id"`
	BaseAddress string       `json:"base_address"`
	Base        *GeoPoint    `json:"base,omitempty"`
	Stops       []Stop       `json:"stops"`
	Result      *RouteResult `json:"result,omitempty"`
}
