package joinery

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the split engine. Wrapped errors carry
// detail; match with errors.Is.
var (
	// ErrInvalidInput reports parameters that violate the engine's
	// invariants before any geometry is built.
	ErrInvalidInput = errors.New("invalid input")
	// ErrGeometry reports a profile that cannot be constructed, such
	// as a tongue with negative width.
	ErrGeometry = errors.New("geometry construction")
	// ErrBooleanOp reports a boolean operation whose result has no
	// volume, typically a cut line that misses the part entirely.
	ErrBooleanOp = errors.New("boolean operation")
)

func errInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func errGeom(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrGeometry, fmt.Sprintf(format, args...))
}

func errBool(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBooleanOp, fmt.Sprintf(format, args...))
}
