package userprops

import (
	"errors"
	"fmt"
)

// ErrNoSource is returned by Load when neither a resource nor a resource
// location has been configured.
var ErrNoSource = errors.New("no resource or resource location configured")

var (
	errEmptyValue = errors.New("value has no password field")
	errBlankRole  = errors.New("blank role field")
)

// MalformedEntryError reports one entry whose value could not be converted
// into a UserRecord. It carries the username and the raw value for
// diagnostics.
type MalformedEntryError struct {
	Username string
	Value    string
	Err      error
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("entry with username %q and value %q could not be converted to a user record: %v",
		e.Username, e.Value, e.Err)
}

func (e *MalformedEntryError) Unwrap() error { return e.Err }
