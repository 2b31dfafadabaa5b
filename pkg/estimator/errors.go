package estimator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument marks request validation failures: unknown accelerator
// identifiers, non-positive divisor fields, out-of-range MFU. Match with
// errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnderspecified marks requests that carry neither a target training time
// nor an explicit fleet size, leaving the forward calculation with no
// divisor.
var ErrUnderspecified = errors.New("underspecified request")

// UnknownAcceleratorError reports an accelerator identifier that does not
// exist in the catalog. It matches ErrInvalidArgument under errors.Is.
type UnknownAcceleratorError struct {
	// Name is the identifier that failed the lookup.
	Name string

	// Known lists the identifiers the catalog does contain.
	Known []string
}

func (e *UnknownAcceleratorError) Error() string {
	return fmt.Sprintf("unknown accelerator %q, known types: %s", e.Name, strings.Join(e.Known, ", "))
}

func (e *UnknownAcceleratorError) Unwrap() error {
	return ErrInvalidArgument
}

// invalidArgf builds an error that matches ErrInvalidArgument.
func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
