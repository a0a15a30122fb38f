package rollingcubes

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/rollingcubes/internal/config"
	"github.com/vovakirdan/rollingcubes/internal/core"
	"github.com/vovakirdan/rollingcubes/internal/cubes"
	"github.com/vovakirdan/rollingcubes/internal/registry"
)

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.Reset(core.DefaultConfig())
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.FrameOf(actions...))
}

func useConfig(t *testing.T, cfg config.CubesConfig) {
	t.Helper()
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(config.DefaultCubesConfig()) })
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"cubes", "cubes_tutorial"} {
		if !registry.Exists(id) {
			t.Errorf("game %q is not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestResetClassic(t *testing.T) {
	g := newTestGame(t, New())

	snap := g.Snapshot()
	if snap.Steps != 0 || snap.State != StatePlaying {
		t.Errorf("unexpected snapshot after reset: %+v", snap)
	}
	if snap.EmptyRow != 0 || snap.EmptyCol != 1 {
		t.Errorf("empty cell = (%d,%d), want (0,1)", snap.EmptyRow, snap.EmptyCol)
	}
	// Cursor starts on the first cube that can roll
	if snap.CursorRow != 0 || snap.CursorCol != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", snap.CursorRow, snap.CursorCol)
	}
	if snap.Board != cubes.New().String() {
		t.Errorf("board = %q, want canonical start", snap.Board)
	}
}

func TestRollMovesCubeAndCursor(t *testing.T) {
	g := newTestGame(t, New())

	result := step(g, core.ActionConfirm)
	if !result.Moved {
		t.Fatal("expected the roll to succeed")
	}
	if result.State.Steps != 1 {
		t.Errorf("Steps = %d, want 1", result.State.Steps)
	}

	board := g.Board()
	if got := board.At(0, 1); got != cubes.Face5 {
		t.Errorf("rolled cube = %v, want 5", got)
	}
	if row, col := board.EmptyCell(); row != 0 || col != 2 {
		t.Errorf("empty cell = (%d,%d), want (0,2)", row, col)
	}
	if row, col := g.Cursor(); row != 0 || col != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", row, col)
	}

	// Rolling back restores the start position
	step(g, core.ActionConfirm)
	if g.Board().String() != cubes.New().String() {
		t.Errorf("board after roll back = %q", g.Board().String())
	}
	if g.State().Steps != 2 {
		t.Errorf("Steps = %d, want 2", g.State().Steps)
	}
}

func TestIllegalRollChangesNothing(t *testing.T) {
	g := newTestGame(t, New())
	before := g.Board()

	step(g, core.ActionDown)
	step(g, core.ActionDown)
	result := step(g, core.ActionConfirm)

	if result.Moved {
		t.Error("roll from (2,2) should be rejected")
	}
	if result.State.Steps != 0 {
		t.Errorf("Steps = %d, want 0", result.State.Steps)
	}
	if !g.Board().Equal(before) {
		t.Error("board changed after a rejected roll")
	}
	if g.hint == "" {
		t.Error("expected a hint after a rejected roll")
	}

	// Hint expires
	for range hintTicks {
		step(g)
	}
	if g.hint != "" {
		t.Errorf("hint %q should have expired", g.hint)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newTestGame(t, New())

	for range 10 {
		step(g, core.ActionUp)
		step(g, core.ActionLeft)
	}
	if row, col := g.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", row, col)
	}

	for range 10 {
		step(g, core.ActionDown)
		step(g, core.ActionRight)
	}
	if row, col := g.Cursor(); row != cubes.Size-1 || col != cubes.Size-1 {
		t.Errorf("cursor = (%d,%d), want (3,3)", row, col)
	}
}

func TestTutorialSolvesInOneRoll(t *testing.T) {
	g := newTestGame(t, NewTutorial())
	if g.State().Solved {
		t.Fatal("tutorial should not start solved")
	}

	result := step(g, core.ActionConfirm)
	if !result.State.Solved || !result.State.GameOver {
		t.Fatalf("expected solved state, got %+v", result.State)
	}
	if result.State.Steps != 1 {
		t.Errorf("Steps = %d, want 1", result.State.Steps)
	}
	if g.Snapshot().State != StateSolved {
		t.Errorf("snapshot state = %s, want solved", g.Snapshot().State)
	}

	// Input after solving is ignored
	before := g.Snapshot()
	step(g, core.ActionUp)
	step(g, core.ActionConfirm)
	after := g.Snapshot()
	if after.Steps != before.Steps || after.Board != before.Board || after.PlayTicks != before.PlayTicks {
		t.Error("game changed after being solved")
	}
}

func TestPauseStopsClockAndInput(t *testing.T) {
	g := newTestGame(t, New())

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	for range 30 {
		step(g, core.ActionConfirm)
	}
	if g.State().Steps != 0 {
		t.Error("rolls should be ignored while paused")
	}
	if g.State().Elapsed != 0 {
		t.Errorf("Elapsed = %s while paused, want 0", g.State().Elapsed)
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("expected game to resume")
	}
}

func TestElapsedFromTicks(t *testing.T) {
	g := newTestGame(t, New())

	for range 90 {
		step(g)
	}
	if got := g.State().Elapsed; got != 1500*time.Millisecond {
		t.Errorf("Elapsed = %s, want 1.5s", got)
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	if !g.State().Paused {
		t.Error("small screen should report paused")
	}
	if step(g, core.ActionConfirm).Moved {
		t.Error("rolls should be ignored on a small screen")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}
}

func TestConfiguredStart(t *testing.T) {
	useConfig(t, config.CubesConfig{
		Goal: 5,
		Layout: [][]int{
			{5, 5, 5, 5},
			{5, 5, 5, 5},
			{5, 5, 5, 1},
			{5, 5, 5, 0},
		},
		Timer: false,
	})

	g := newTestGame(t, New())
	if g.Board().Goal() != cubes.Face5 {
		t.Errorf("Goal = %v, want 5", g.Board().Goal())
	}
	if g.showTimer {
		t.Error("timer should be hidden")
	}

	// 1 rolled down becomes 2, not the goal
	result := step(g, core.ActionConfirm)
	if !result.Moved || result.State.Solved {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestInvalidConfigFallsBack(t *testing.T) {
	useConfig(t, config.CubesConfig{Goal: 2, Layout: [][]int{{1, 2}}})

	g := newTestGame(t, New())
	if g.Board().String() != cubes.New().String() {
		t.Errorf("expected canonical start, got %q", g.Board().String())
	}
}

func TestSolvedConfigFallsBack(t *testing.T) {
	useConfig(t, config.CubesConfig{Goal: 1})

	g := newTestGame(t, New())
	if g.State().Solved {
		t.Error("a start that is already solved should not be played")
	}
	if g.Board().String() != cubes.New().String() {
		t.Errorf("expected canonical start, got %q", g.Board().String())
	}
}

func TestPuzzleKeys(t *testing.T) {
	if got := newTestGame(t, New()).Puzzle(); got != "cubes" {
		t.Errorf("classic Puzzle() = %q, want cubes", got)
	}
	if got := newTestGame(t, NewTutorial()).Puzzle(); got != "cubes_tutorial" {
		t.Errorf("tutorial Puzzle() = %q, want cubes_tutorial", got)
	}
	if got := ClassicPuzzle(); got != "cubes" {
		t.Errorf("ClassicPuzzle() = %q, want cubes", got)
	}

	// Before Reset the key comes from the configured start
	if got := New().Puzzle(); got != "cubes" {
		t.Errorf("Puzzle() before Reset = %q, want cubes", got)
	}
}

func TestCustomPuzzleKey(t *testing.T) {
	useConfig(t, config.CubesConfig{
		Goal: 5,
		Layout: [][]int{
			{5, 5, 5, 5},
			{5, 5, 5, 5},
			{5, 5, 5, 1},
			{5, 5, 5, 0},
		},
	})

	g := newTestGame(t, New())
	want := "cubes:goal5:5555555555515550"
	if got := g.Puzzle(); got != want {
		t.Errorf("Puzzle() = %q, want %q", got, want)
	}
	if got := ClassicPuzzle(); got != want {
		t.Errorf("ClassicPuzzle() = %q, want %q", got, want)
	}

	// Same layout, different goal is a different puzzle
	useConfig(t, config.CubesConfig{
		Goal: 3,
		Layout: [][]int{
			{5, 5, 5, 5},
			{5, 5, 5, 5},
			{5, 5, 5, 1},
			{5, 5, 5, 0},
		},
	})
	if ClassicPuzzle() == want {
		t.Error("goal should be part of the puzzle key")
	}

	// Rolling does not change the key
	step(g, core.ActionConfirm)
	if g.Puzzle() != want {
		t.Errorf("Puzzle() after a roll = %q, want %q", g.Puzzle(), want)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionConfirm, core.ActionNone, core.ActionDown, core.ActionConfirm,
		core.ActionLeft, core.ActionConfirm, core.ActionRight, core.ActionConfirm,
	}

	run := func() Snapshot {
		g := newTestGame(t, New())
		for _, a := range inputs {
			step(g, a)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	cfg := core.DefaultConfig()
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Rolling Cubes", "Steps: 0", "Goal: all 2", "[1]", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}

	step(g, core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay not rendered")
	}
}

func TestRenderSolved(t *testing.T) {
	g := newTestGame(t, NewTutorial())
	step(g, core.ActionConfirm)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "SOLVED!") {
		t.Error("solved overlay not rendered")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0:00.0"},
		{1500, "0:01.5"},
		{61234, "1:01.2"},
		{600000, "10:00.0"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.ms); got != tt.want {
			t.Errorf("formatElapsed(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
