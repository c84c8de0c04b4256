package extract

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvariantError reports a data integrity violation in the input
// archives. These are not recoverable: the driver aborts the whole run
// on the first one instead of skipping the level.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return e.Reason
}

func invariantf(format string, a ...interface{}) error {
	return &InvariantError{Reason: fmt.Sprintf(format, a...)}
}

func IsInvariantViolation(err error) bool {
	_, ok := errors.Cause(err).(*InvariantError)
	return ok
}
