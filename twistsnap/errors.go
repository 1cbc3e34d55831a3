package twistsnap

import (
	"errors"
	"fmt"
)

// ErrParams reports twist-snap parameters that cannot produce a
// working pair. Match with errors.Is.
var ErrParams = errors.New("twistsnap: invalid parameters")

func errParam(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrParams, fmt.Sprintf(format, args...))
}
