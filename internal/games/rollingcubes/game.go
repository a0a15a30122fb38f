// Package rollingcubes is the playable Rolling Cubes puzzle: a cursor moves
// over the 4x4 tray and the selected cube rolls into the empty cell.
package rollingcubes

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollingcubes/internal/config"
	"github.com/vovakirdan/rollingcubes/internal/core"
	"github.com/vovakirdan/rollingcubes/internal/cubes"
	"github.com/vovakirdan/rollingcubes/internal/registry"
)

// Variant selects the starting position.
type Variant string

const (
	VariantClassic  Variant = "cubes"
	VariantTutorial Variant = "cubes_tutorial"
)

// hintTicks is how long the "can't roll" hint stays visible, in ticks.
const hintTicks = 90

// Game implements the Rolling Cubes puzzle.
type Game struct {
	variant Variant
	puzzle  string // Leaderboard key of the start position
	tick    uint64

	board     *cubes.Board
	cursorRow int
	cursorCol int

	steps     int
	playTicks uint64 // Unpaused ticks, converted to elapsed time
	tickRate  int
	showTimer bool

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	solved    bool
	paused    bool
	tooSmall  bool
	hint      string
	hintTicks int
	lastMove  string
}

// Package-level variables for config
var (
	startConfig = config.DefaultCubesConfig()
	logger      = log.New(io.Discard)
)

// SetConfig sets the configuration used by the classic variant on the next Reset.
func SetConfig(cfg config.CubesConfig) {
	startConfig = cfg
}

// SetLogger sets the logger used for roll events. Pass nil to silence it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a classic game starting from the configured layout.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewTutorial creates a game one roll away from solved.
func NewTutorial() *Game {
	return &Game{variant: VariantTutorial}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantTutorial), func() registry.Game {
		return NewTutorial()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantTutorial {
		return "Rolling Cubes (Tutorial)"
	}
	return "Rolling Cubes"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.steps = 0
	g.playTicks = 0
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.solved = false
	g.paused = false
	g.hint = ""
	g.hintTicks = 0
	g.lastMove = ""
	g.showTimer = startConfig.Timer

	g.board = g.startBoard()
	g.puzzle = puzzleKey(g.variant, g.board)
	g.solved = g.board.IsSolved()

	// Start the cursor on a cube that can roll
	g.cursorRow, g.cursorCol = 0, 0
	if moves := g.board.LegalMoves(); len(moves) > 0 {
		g.cursorRow, g.cursorCol = moves[0].Row, moves[0].Col
	}

	g.checkScreenSize()
}

// startBoard builds the board for the current variant.
// An invalid configured layout falls back to the canonical start.
func (g *Game) startBoard() *cubes.Board {
	if g.variant == VariantTutorial {
		b, err := cubes.FromLayout(cubes.NearGoalLayout())
		if err != nil {
			// Shouldn't happen, the fixture is valid
			return cubes.New()
		}
		return b
	}

	b, err := startConfig.Board()
	if err != nil {
		logger.Warn("invalid start layout, using default", "err", err)
		return cubes.New()
	}
	return b
}

// puzzleKey names the start position results are ranked under.
// The stock starts use their variant ID; any other board gets a key
// built from its goal and layout, so each custom puzzle has its own
// leaderboard.
func puzzleKey(variant Variant, start *cubes.Board) string {
	stock := cubes.New()
	if variant == VariantTutorial {
		if b, err := cubes.FromLayout(cubes.NearGoalLayout()); err == nil {
			stock = b
		}
	}
	if start.Equal(stock) {
		return string(variant)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:goal%d:", VariantClassic, start.Goal().Int())
	for _, row := range start.Layout() {
		for _, v := range row {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}

// ClassicPuzzle returns the leaderboard key of the classic variant under
// the current configuration.
func ClassicPuzzle() string {
	b, err := startConfig.Board()
	if err != nil {
		b = cubes.New()
	}
	return puzzleKey(VariantClassic, b)
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (21 wide, 9 tall) + HUD (3 lines) + footer
	minW := 32
	minH := 15
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.solved {
		g.paused = !g.paused
	}

	if g.paused || g.solved {
		return core.StepResult{State: g.State()}
	}

	g.playTicks++
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = ""
		}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(cubes.Up)
	case in.Has(core.ActionDown):
		g.moveCursor(cubes.Down)
	case in.Has(core.ActionLeft):
		g.moveCursor(cubes.Left)
	case in.Has(core.ActionRight):
		g.moveCursor(cubes.Right)
	}

	moved := false
	if in.Has(core.ActionConfirm) {
		moved = g.roll()
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// moveCursor moves the cursor one cell, staying on the board.
func (g *Game) moveCursor(d cubes.Direction) {
	g.cursorRow = core.Clamp(g.cursorRow+d.DX(), 0, cubes.Size-1)
	g.cursorCol = core.Clamp(g.cursorCol+d.DY(), 0, cubes.Size-1)
}

// roll rolls the cube under the cursor into the empty cell.
// The cursor follows the cube so repeated rolls move it back and forth.
func (g *Game) roll() bool {
	row, col := g.cursorRow, g.cursorCol
	before := g.board.At(row, col)

	d, err := g.board.RollToEmpty(row, col)
	if err != nil {
		g.hint = "Can't roll that cube"
		g.hintTicks = hintTicks
		logger.Debug("roll rejected", "row", row, "col", col, "err", err)
		return false
	}

	g.steps++
	g.cursorRow += d.DX()
	g.cursorCol += d.DY()
	after := g.board.At(g.cursorRow, g.cursorCol)
	g.lastMove = d.String()
	g.hint = ""
	g.hintTicks = 0

	logger.Debug("roll",
		"row", row, "col", col,
		"dir", d,
		"from", before.Int(), "to", after.Int(),
		"steps", g.steps)

	if g.board.IsSolved() {
		g.solved = true
		logger.Debug("solved", "steps", g.steps, "elapsed", g.elapsed())
	}
	return true
}

// elapsed converts unpaused ticks to play time.
func (g *Game) elapsed() time.Duration {
	rate := g.tickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Duration(g.playTicks) * time.Second / time.Duration(rate)
}

// Puzzle returns the leaderboard key of the start position.
func (g *Game) Puzzle() string {
	if g.puzzle == "" {
		return puzzleKey(g.variant, g.startBoard())
	}
	return g.puzzle
}

// Board returns a copy of the current board.
func (g *Game) Board() *cubes.Board {
	return g.board.Clone()
}

// Cursor returns the cursor position.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Steps:    g.steps,
		Elapsed:  g.elapsed(),
		Solved:   g.solved,
		GameOver: g.solved,
		Paused:   g.paused || g.tooSmall,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Space: Roll | P: Pause | R: Restart | Q: Quit"
}
