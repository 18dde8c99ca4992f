package resource

import (
	"errors"
	"fmt"
)

var ErrInvalidLocation = errors.New("invalid resource location")

// UnavailableError reports a location that cannot be resolved or a resource
// that cannot be opened.
type UnavailableError struct {
	Location string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("resource unavailable: %s: %v", e.Location, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
