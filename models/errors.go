package models

import "fmt"

// UnknownPlaceError reports a reference to a place that is not in the catalog.
// It is fatal to that single lookup, never to a batch.
type UnknownPlaceError struct {
	Ref string
}

func (e *UnknownPlaceError) Error() string {
	return fmt.Sprintf("unknown place %q", e.Ref)
}

// InvalidInputError reports malformed request input (coordinates out of range,
// non-numeric hour). Rejected at the boundary, never reaches the core.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// PredictionError reports a scoring function that failed or returned an
// unusable shape. The affected candidate is dropped from consideration.
type PredictionError struct {
	Place string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed for %q: %v", e.Place, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// WeatherUnavailable reports a failed live weather fetch. Callers always
// resolve it via the synthetic fallback; it is never surfaced to users.
type WeatherUnavailable struct {
	Err error
}

func (e *WeatherUnavailable) Error() string {
	return fmt.Sprintf("weather unavailable: %v", e.Err)
}

func (e *WeatherUnavailable) Unwrap() error { return e.Err }
