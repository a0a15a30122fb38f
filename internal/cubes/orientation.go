package cubes

import (
	"fmt"
	"strconv"
)

// Orientation is the state of a cell: either Empty or one of the six ways a
// cube can lie in the tray.
type Orientation uint8

const (
	Empty Orientation = iota
	Face1
	Face2
	Face3
	Face4
	Face5
	Face6
)

// orientationCount is the number of orientation values, Empty included.
const orientationCount = 7

// transitions maps (orientation, direction) to the orientation after one roll.
// Row 0 belongs to Empty and is never read.
var transitions = [orientationCount][directionCount]Orientation{
	Empty: {},
	Face1: {Face3, Face4, Face2, Face5},
	Face2: {Face1, Face2, Face6, Face2},
	Face3: {Face6, Face3, Face1, Face3},
	Face4: {Face4, Face6, Face4, Face1},
	Face5: {Face5, Face1, Face5, Face6},
	Face6: {Face2, Face5, Face3, Face4},
}

// OrientationOf returns the orientation with the given integer code.
// 0 is Empty, 1-6 are the cube orientations.
func OrientationOf(value int) (Orientation, error) {
	if value < 0 || value >= orientationCount {
		return Empty, fmt.Errorf("%w: orientation %d out of range [0,%d]", ErrInvalidValue, value, orientationCount-1)
	}
	return Orientation(value), nil
}

// Int returns the integer code of the orientation.
func (o Orientation) Int() int {
	return int(o)
}

// IsValid reports whether o is Empty or one of the six cube orientations.
func (o Orientation) IsValid() bool {
	return o < orientationCount
}

// RollTo returns the orientation a cube ends up in after rolling one cell
// in direction d.
func (o Orientation) RollTo(d Direction) (Orientation, error) {
	if o == Empty {
		return Empty, fmt.Errorf("%w: cannot roll the empty cell", ErrUnsupportedOperation)
	}
	if !o.IsValid() {
		return Empty, fmt.Errorf("%w: orientation %d", ErrInvalidValue, o)
	}
	if !d.IsValid() {
		return Empty, fmt.Errorf("%w: direction %d", ErrInvalidValue, d)
	}
	return transitions[o][d], nil
}

// String returns the integer code as text, as used in board dumps.
func (o Orientation) String() string {
	return strconv.Itoa(int(o))
}
