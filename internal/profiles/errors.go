package profiles

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfileName is returned when a name is not in a mode's catalogue.
	ErrInvalidProfileName = errors.New("invalid key profile name")
	// ErrUnsetSelection is returned when a vector is requested from a selector
	// whose construction rejected its input.
	ErrUnsetSelection = errors.New("no key profile selected")
	// ErrUnknownMode is returned for a mode other than Major or Minor.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrInvalidVector is returned by Vector.Validate and Normalize.
	ErrInvalidVector = errors.New("invalid key profile vector")
)

// Error carries the operation, mode and name that produced one of the
// sentinel errors above.
type Error struct {
	Op   string
	Mode Mode
	Name Name
	Err  error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Mode, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Mode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
