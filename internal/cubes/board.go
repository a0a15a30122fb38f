package cubes

import (
	"fmt"
	"strings"
)

// Size is the board dimension.
const Size = 4

// DefaultGoal is the orientation every cube must show for the board to be solved.
const DefaultGoal = Face2

// initialLayout is the canonical starting position.
var initialLayout = [Size][Size]int{
	{1, 0, 1, 1},
	{1, 1, 1, 1},
	{1, 1, 1, 1},
	{1, 1, 1, 1},
}

// nearGoalLayout is one roll away from solved under DefaultGoal:
// rolling (2,1) down turns its 1 into a 2.
var nearGoalLayout = [Size][Size]int{
	{2, 2, 2, 2},
	{2, 2, 2, 2},
	{2, 1, 2, 2},
	{2, 0, 2, 2},
}

// InitialLayout returns a fresh copy of the canonical starting layout.
func InitialLayout() [][]int {
	return toSlices(initialLayout)
}

// NearGoalLayout returns a fresh copy of a layout one roll away from solved.
func NearGoalLayout() [][]int {
	return toSlices(nearGoalLayout)
}

func toSlices(a [Size][Size]int) [][]int {
	out := make([][]int, Size)
	for i := range a {
		out[i] = append([]int(nil), a[i][:]...)
	}
	return out
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// Board is the tray of cubes plus the position of its single empty cell.
type Board struct {
	tray     [Size][Size]Orientation
	emptyRow int
	emptyCol int
	goal     Orientation
}

// Option configures a Board at construction.
type Option func(*Board)

// WithGoal sets the orientation required for the board to count as solved.
func WithGoal(goal Orientation) Option {
	return func(b *Board) {
		b.goal = goal
	}
}

// New returns a board in the canonical starting layout.
// It panics if an option sets a goal that is not a cube orientation;
// use FromLayout with InitialLayout to get an error instead.
func New(opts ...Option) *Board {
	b, err := FromLayout(InitialLayout(), opts...)
	if err != nil {
		// Only an invalid goal option can get here.
		panic(err)
	}
	return b
}

// FromLayout builds a board from a 4x4 layout of orientation codes.
// The layout must contain exactly one 0 (the empty cell) and only values in [0,6].
func FromLayout(layout [][]int, opts ...Option) (*Board, error) {
	if err := validateLayout(layout); err != nil {
		return nil, err
	}

	b := &Board{goal: DefaultGoal}
	for _, opt := range opts {
		opt(b)
	}
	if b.goal == Empty || !b.goal.IsValid() {
		return nil, fmt.Errorf("%w: goal %d is not a cube orientation", ErrInvalidBoard, b.goal)
	}

	for i := range Size {
		for j := range Size {
			b.tray[i][j] = Orientation(layout[i][j])
			if b.tray[i][j] == Empty {
				b.emptyRow, b.emptyCol = i, j
			}
		}
	}
	return b, nil
}

// validateLayout checks shape, value range and the empty-cell count.
func validateLayout(layout [][]int) error {
	if len(layout) != Size {
		return fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, Size, len(layout))
	}
	empties := 0
	for i, row := range layout {
		if len(row) != Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, i, len(row), Size)
		}
		for j, v := range row {
			o, err := OrientationOf(v)
			if err != nil {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, i, j, v)
			}
			if o == Empty {
				empties++
			}
		}
	}
	if empties != 1 {
		return fmt.Errorf("%w: want exactly one empty cell, got %d", ErrInvalidBoard, empties)
	}
	return nil
}

// At returns the orientation at (row, col), or Empty when out of bounds.
func (b *Board) At(row, col int) Orientation {
	if !inBounds(row, col) {
		return Empty
	}
	return b.tray[row][col]
}

// EmptyCell returns the coordinates of the empty cell.
func (b *Board) EmptyCell() (row, col int) {
	return b.emptyRow, b.emptyCol
}

// Goal returns the orientation required to solve the board.
func (b *Board) Goal() Orientation {
	return b.goal
}

// Layout returns the board as orientation codes.
func (b *Board) Layout() [][]int {
	out := make([][]int, Size)
	for i := range Size {
		out[i] = make([]int, Size)
		for j := range Size {
			out[i][j] = b.tray[i][j].Int()
		}
	}
	return out
}

// IsSolved reports whether every cube shows the goal orientation.
// The empty cell is ignored.
func (b *Board) IsSolved() bool {
	for _, row := range b.tray {
		for _, o := range row {
			if o != Empty && o != b.goal {
				return false
			}
		}
	}
	return true
}

// CanRollToEmpty reports whether the cube at (row, col) is directly next to
// the empty cell.
func (b *Board) CanRollToEmpty(row, col int) bool {
	return inBounds(row, col) && abs(b.emptyRow-row)+abs(b.emptyCol-col) == 1
}

// RollDirection returns the direction the cube at (row, col) would travel to
// reach the empty cell.
func (b *Board) RollDirection(row, col int) (Direction, error) {
	if !b.CanRollToEmpty(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) is not next to the empty cell (%d,%d)",
			ErrInvalidMove, row, col, b.emptyRow, b.emptyCol)
	}
	return DirectionOf(b.emptyRow-row, b.emptyCol-col)
}

// RollToEmpty rolls the cube at (row, col) into the empty cell and returns the
// direction it travelled. The vacated cell becomes the new empty cell.
// On error the board is left untouched.
func (b *Board) RollToEmpty(row, col int) (Direction, error) {
	d, err := b.RollDirection(row, col)
	if err != nil {
		return 0, err
	}
	rolled, err := b.tray[row][col].RollTo(d)
	if err != nil {
		return 0, err
	}
	b.tray[b.emptyRow][b.emptyCol] = rolled
	b.tray[row][col] = Empty
	b.emptyRow, b.emptyCol = row, col
	return d, nil
}

// LegalMoves returns the cells that can roll into the empty cell, in
// direction order of their neighbour offset.
func (b *Board) LegalMoves() []Cell {
	moves := make([]Cell, 0, directionCount)
	for _, d := range Directions() {
		r, c := b.emptyRow+d.DX(), b.emptyCol+d.DY()
		if inBounds(r, c) {
			moves = append(moves, Cell{Row: r, Col: c})
		}
	}
	return moves
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether two boards hold the same cubes, empty cell and goal.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return *b == *other
}

// String renders the board one row per line, each cell followed by a space.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.tray {
		for _, o := range row {
			sb.WriteString(o.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
