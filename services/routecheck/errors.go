package routecheck

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when a trip session id is unknown
	ErrSessionNotFound = errors.New("trip session not found")

	// ErrStopNotFound is returned when a stop id is not in the session
	ErrStopNotFound = errors.New("stop not found")

	// ErrUpgradeRequired is returned when a free-plan caller attempts a
	// multi-stop operation. It is raised before any mutation and is
	// distinct from technical errors so clients can show an upgrade prompt.
	ErrUpgradeRequired = errors.New("multi-stop trips require an active subscription")

	// ErrBaseNotSet is returned when a calculation is triggered without a
	// base location
	ErrBaseNotSet = errors.New("base location is not set")

	// ErrEmptyAddress is returned for blank address input
	ErrEmptyAddress = errors.New("address must not be empty")

	// ErrSuperseded is returned to a calculation whose result was discarded
	// because a newer calculation was triggered on the same session
	ErrSuperseded = errors.New("calculation superseded by a newer request")
)

// GeocodeErrorKind separates user-correctable lookup misses from provider
// faults; only the latter are reported to observability.
type GeocodeErrorKind string

const (
	GeocodeNotFound    GeocodeErrorKind = "not_found"
	GeocodeUnavailable GeocodeErrorKind = "unavailable"
)

// GeocodeError describes a failed address lookup
type GeocodeError struct {
	Kind    GeocodeErrorKind
	Address string
	Err     error
}

func (e *GeocodeError) Error() string {
	switch e.Kind {
	case GeocodeNotFound:
		return fmt.Sprintf("could not find location: %s", e.Address)
	default:
		if e.Err != nil {
			return fmt.Sprintf("geocoding unavailable for %q: %v", e.Address, e.Err)
		}
		return fmt.Sprintf("geocoding unavailable for %q", e.Address)
	}
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// StopGeocodeError reports which point of the trip failed to geocode.
// Position is 1-indexed over the stop sequence; position 0 is the base.
type StopGeocodeError struct {
	Position int
	Err      error
}

func (e *StopGeocodeError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("base location: %v", e.Err)
	}
	return fmt.Sprintf("stop %d: %v", e.Position, e.Err)
}

func (e *StopGeocodeError) Unwrap() error {
	return e.Err
}

// IsGeocodeNotFound reports whether err is a user-correctable geocode miss
func IsGeocodeNotFound(err error) bool {
	var ge *GeocodeError
	return errors.As(err, &ge) && ge.Kind == GeocodeNotFound
}

// IsGeocodeUnavailable reports whether err is a geocoding provider fault
func IsGeocodeUnavailable(err error) bool {
	var ge *GeocodeError
	return errors.As(err, &ge) && ge.Kind == GeocodeUnavailable
}
