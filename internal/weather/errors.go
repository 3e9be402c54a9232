package weather

import "fmt"

// ValidationError rejects malformed caller input before any outbound
// call is made.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that a location search succeeded but matched
// nothing. It is distinct from an upstream failure: the provider call
// itself completed.
type NotFoundError struct {
	Location string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find location: %s", e.Location)
}
