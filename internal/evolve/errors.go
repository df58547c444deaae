package evolve

import "fmt"

// Error represents an error that occurs while evolving a population
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("evolve: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("evolve: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
