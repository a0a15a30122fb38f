package rollingcubes

import "github.com/vovakirdan/rollingcubes/internal/cubes"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateSolved      GameStateType = "solved"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Steps     int
	PlayTicks uint64
	CursorRow int
	CursorCol int
	EmptyRow  int
	EmptyCol  int
	Goal      int
	Board     string // One line per row, as printed by the engine
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.solved:
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	board := g.board
	if board == nil {
		board = cubes.New()
	}
	emptyRow, emptyCol := board.EmptyCell()

	return Snapshot{
		Tick:      g.tick,
		Variant:   string(g.variant),
		Steps:     g.steps,
		PlayTicks: g.playTicks,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		EmptyRow:  emptyRow,
		EmptyCol:  emptyCol,
		Goal:      board.Goal().Int(),
		Board:     board.String(),
		State:     state,
	}
}
