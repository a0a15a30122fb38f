// Package cubes implements the rolling cubes puzzle state: die orientations,
// roll directions and the 4x4 board they live on.
//
// The package has no external dependencies and does no I/O. A Board is owned
// by a single game session and is not safe for concurrent mutation.
package cubes

import "errors"

var (
	// ErrInvalidValue is returned for an integer that is not a valid
	// orientation or direction code.
	ErrInvalidValue = errors.New("cubes: invalid value")

	// ErrInvalidBoard is returned when a layout fails shape, value-range or
	// empty-cell validation.
	ErrInvalidBoard = errors.New("cubes: invalid board")

	// ErrInvalidMove is returned when the requested cell cannot roll into
	// the empty cell.
	ErrInvalidMove = errors.New("cubes: invalid move")

	// ErrUnsupportedOperation is returned when rolling the empty cell.
	ErrUnsupportedOperation = errors.New("cubes: unsupported operation")
)
