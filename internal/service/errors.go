package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update names an identifier that does not
// exist in a strict collection. Read paths never return it; they report
// absence with a boolean instead.
var ErrNotFound = errors.New("record not found")

// DecodeError reports a stored blob that does not parse into the expected
// collection shape. There is no repair or migration logic; the error is
// surfaced as-is.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode collection %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
