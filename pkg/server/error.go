package server

import (
	"errors"
	"fmt"
)

// Error wraps an underlying cause with a stable error code and a
// human-readable message, so HTTP handlers can map it to a status code
// without string-matching on Error().
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() error {
	return e.code
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

var (
	ErrInternalServerError = errors.New("internal server error")
	ErrNotFound            = errors.New("requested item is not found")
	ErrConflict            = errors.New("item already exists")
	ErrBadParamInput       = errors.New("given param is not valid")

	// ErrNoSeaportFound is returned when the port registry is empty.
	ErrNoSeaportFound = errors.New("no seaport available to snap to")
	// ErrNoSeaportWithinRange is returned when the nearest seaport lies
	// outside the configured snap-distance threshold.
	ErrNoSeaportWithinRange = errors.New("no seaport within snap range")
	// ErrCoordinateOnLand is returned by the optional coordinate
	// validator when validate_coordinates rejects a point.
	ErrCoordinateOnLand = errors.New("coordinate lies on land")
	// ErrPolarRegionUnsupported is mapped to 400 by the REST layer's
	// getStatusCode; no code path in this repository returns it.
	ErrPolarRegionUnsupported = errors.New("polar region unsupported")
	// ErrGraphSnapFailed is returned when a coordinate cannot be
	// snapped to the sea-lane graph's spatial index.
	ErrGraphSnapFailed = errors.New("sea graph snap failed")
	// ErrLandMaskLoadFailed is returned when the land mask source
	// cannot be loaded at build time.
	ErrLandMaskLoadFailed = errors.New("land mask load failed")
	// ErrConnectivityInvariantViolated is returned when strict
	// connectivity validation fails during a build.
	ErrConnectivityInvariantViolated = errors.New("connectivity invariant violated")
	// ErrInvalidBuildConfig is returned for non-positive steps or other
	// malformed builder configuration.
	ErrInvalidBuildConfig = errors.New("invalid build configuration")
	// ErrIO covers persistence failures during build or load.
	ErrIO = errors.New("io failed")
	// ErrSeaRoutingUnavailable is returned when a sea-mode request
	// arrives but no sea engine was configured at startup.
	ErrSeaRoutingUnavailable = errors.New("sea routing is not configured")
)

var MessageInternalServerError = "internal server error"
