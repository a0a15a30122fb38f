package cubes

import "fmt"

// Direction is one of the four axis-aligned roll directions.
// The declaration order is the column order of the transition table.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directionCount is the number of valid directions.
const directionCount = 4

// deltas holds the (row, col) vector of each direction.
var deltas = [directionCount][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// Directions returns all directions in table order.
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// DirectionOf returns the direction with the given row and column delta.
func DirectionOf(dx, dy int) (Direction, error) {
	for d, v := range deltas {
		if v[0] == dx && v[1] == dy {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: no direction for delta (%d, %d)", ErrInvalidValue, dx, dy)
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// DX returns the row delta.
func (d Direction) DX() int {
	if !d.IsValid() {
		return 0
	}
	return deltas[d][0]
}

// DY returns the column delta.
func (d Direction) DY() int {
	if !d.IsValid() {
		return 0
	}
	return deltas[d][1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}
