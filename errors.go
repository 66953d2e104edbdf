package perf

import (
	"errors"
	"fmt"
)

// ErrCeilingNotFound is returned when the service-ceiling scan exhausts the
// modeled altitude band without the rate of climb ever dropping to zero. The
// ceiling is reported as not found rather than extrapolated.
var ErrCeilingNotFound = errors.New("service ceiling not found within model range")

// InvalidInputError reports an out-of-domain parameter. The evaluation which
// raised it is aborted: no partial result is returned.
type InvalidInputError struct {
	Param  string
	Value  float64
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%g: %s", e.Param, e.Value, e.Reason)
}

func newInvalidInput(param string, value float64, reason string) InvalidInputError {
	return InvalidInputError{param, value, reason}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie InvalidInputError
	return errors.As(err, &iie)
}
