package routing

import "fmt"

// ErrorKind discriminates the structural failures a route request can hit.
// External-data failures (elevation, weather, daylight) never surface here;
// they are absorbed with conservative defaults.
type ErrorKind string

const (
	// KindNetworkNotFound: no walkable graph exists for the region.
	KindNetworkNotFound ErrorKind = "network_not_found"
	// KindSnapFailed: a coordinate could not be mapped to a graph node.
	KindSnapFailed ErrorKind = "snap_failed"
	// KindNoPathFound: origin and destination are disconnected.
	KindNoPathFound ErrorKind = "no_path_found"
	// KindEmptyInput: the request is missing required coordinates.
	KindEmptyInput ErrorKind = "empty_input"
	// KindLoopFailed: one of the two loop legs could not be routed.
	KindLoopFailed ErrorKind = "loop_failed"
	// KindInvalidMode: the mode is not one the dispatcher understands.
	KindInvalidMode ErrorKind = "invalid_mode"
)

// RouteError is the structured error every failed dispatch resolves to.
// Hints carry user-facing remediation suggestions where we have them.
type RouteError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Hints   []string  `json:"hints,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *RouteError) Unwrap() error { return e.cause }

func newRouteError(kind ErrorKind, message string, cause error, hints ...string) *RouteError {
	return &RouteError{Kind: kind, Message: message, Hints: hints, cause: cause}
}

func errNetworkNotFound(cause error) *RouteError {
	return newRouteError(KindNetworkNotFound, "Walking network not available for this area.", cause,
		"Try a closer start/end point.",
		"Try transit (PATH, subway, ferry).",
		"Try cycling mode.")
}

func errSnapFailed(cause error) *RouteError {
	return newRouteError(KindSnapFailed, "Could not snap to the walking network.", cause,
		"Try tapping a different spot.",
		"Walking network may not exist here.")
}

func errNoPath(cause error, hints ...string) *RouteError {
	return newRouteError(KindNoPathFound, "No walking path available.", cause, hints...)
}

func errLoopFailed(cause error) *RouteError {
	return newRouteError(KindLoopFailed, "Loop route failed.", cause)
}
