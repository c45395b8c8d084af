package prefs

import (
	"errors"
	"fmt"
)

// ErrContextMissing is returned when a required host collaborator, like the response header sink,
// is not provided at construction time.
var ErrContextMissing = errors.New("required context missing")

// TransportError is returned when a submission could not be delivered.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
