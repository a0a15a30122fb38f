package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollingcubes/internal/config"
	"github.com/vovakirdan/rollingcubes/internal/core"
	"github.com/vovakirdan/rollingcubes/internal/games/rollingcubes"
	"github.com/vovakirdan/rollingcubes/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send delivers a message and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

// press delivers a key and runs one tick so the game sees it.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m = send(t, m, msg)
	return send(t, m, TickMsg{})
}

// solvedGame reports a solved puzzle without any rolls.
type solvedGame struct {
	*rollingcubes.Game
}

func (g *solvedGame) State() core.GameState {
	return core.GameState{Solved: true, GameOver: true}
}

func (g *solvedGame) Step(in core.InputFrame) core.StepResult {
	g.Game.Step(in)
	return core.StepResult{State: g.State()}
}

func newTestModel(t *testing.T, game *rollingcubes.Game, store *storage.Store) Model {
	t.Helper()
	m := NewModel(game, store, core.DefaultConfig(), "alice")
	m.Init()
	return m
}

func TestModelSavesSolvedResultOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, rollingcubes.NewTutorial(), store)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.gameState.Solved {
		t.Fatal("tutorial should be solved after one roll")
	}

	// More ticks and a quit must not save again
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Player != "alice" || !r.Solved || r.Steps != 1 {
		t.Errorf("unexpected result %+v", r)
	}
	if r.SessionID == "" {
		t.Error("session id should be set")
	}
	if r.Puzzle != string(rollingcubes.VariantTutorial) {
		t.Errorf("Puzzle = %q, want the tutorial key", r.Puzzle)
	}
}

func TestModelTutorialSolveStaysOffClassicBoard(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, rollingcubes.NewTutorial(), store)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.gameState.Solved {
		t.Fatal("tutorial should be solved after one roll")
	}

	best, err := store.BestResults(rollingcubes.ClassicPuzzle(), 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(best) != 0 {
		t.Errorf("tutorial solve ranked on the classic leaderboard: %v", best)
	}

	best, _ = store.BestResults(string(rollingcubes.VariantTutorial), 10)
	if len(best) != 1 {
		t.Errorf("tutorial leaderboard = %v, want the one solve", best)
	}
}

func TestModelCustomStartHasOwnLeaderboard(t *testing.T) {
	rollingcubes.SetConfig(config.CubesConfig{
		Goal:   2,
		Layout: [][]int{{2, 2, 2, 2}, {2, 2, 2, 2}, {2, 1, 2, 2}, {2, 0, 2, 2}},
	})
	t.Cleanup(func() { rollingcubes.SetConfig(config.DefaultCubesConfig()) })

	store := openStore(t)
	m := newTestModel(t, rollingcubes.New(), store)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.gameState.Solved {
		t.Fatal("custom start should be solved after one roll")
	}

	results, _ := store.RecentResults(10)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	custom := results[0].Puzzle
	if custom == string(rollingcubes.VariantClassic) || custom == string(rollingcubes.VariantTutorial) {
		t.Errorf("custom start recorded under stock key %q", custom)
	}
	if custom != rollingcubes.ClassicPuzzle() {
		t.Errorf("Puzzle = %q, want %q", custom, rollingcubes.ClassicPuzzle())
	}

	best, _ := store.BestResults(string(rollingcubes.VariantClassic), 10)
	if len(best) != 0 {
		t.Errorf("custom solve ranked on the stock classic leaderboard: %v", best)
	}
}

func TestModelSolvedStartRecordsNothing(t *testing.T) {
	// SetConfig skips validation, so the game sees a start that is
	// already solved and falls back to the canonical board.
	rollingcubes.SetConfig(config.CubesConfig{Goal: 1})
	t.Cleanup(func() { rollingcubes.SetConfig(config.DefaultCubesConfig()) })

	store := openStore(t)
	m := newTestModel(t, rollingcubes.New(), store)
	m = send(t, m, TickMsg{})
	if m.gameState.Solved {
		t.Error("an already solved start should not count as solved")
	}
	send(t, m, runeKey('q'))

	results, _ := store.RecentResults(10)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %v", results)
	}
}

func TestRecordResultSkipsZeroStepSolve(t *testing.T) {
	store := openStore(t)
	m := NewModel(&solvedGame{Game: rollingcubes.New()}, store, core.DefaultConfig(), "alice")
	m.Init()
	m = send(t, m, TickMsg{})
	send(t, m, runeKey('q'))

	results, _ := store.RecentResults(10)
	if len(results) != 0 {
		t.Errorf("a solve with no rolls was recorded: %v", results)
	}
}

func TestModelSavesUnsolvedOnQuit(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, rollingcubes.New(), store)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey('q'))

	results, _ := store.RecentResults(10)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Solved || results[0].Steps != 1 {
		t.Errorf("unexpected result %+v", results[0])
	}

	best, _ := store.BestResults(rollingcubes.ClassicPuzzle(), 10)
	if len(best) != 0 {
		t.Errorf("unsolved game should not appear in best results: %v", best)
	}
}

func TestModelQuitWithoutRollSavesNothing(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, rollingcubes.New(), store)

	m = send(t, m, TickMsg{})
	send(t, m, runeKey('q'))

	results, _ := store.RecentResults(10)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %v", results)
	}
}

func TestModelRestartStartsNewSession(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, rollingcubes.New(), store)
	first := m.sessionID

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runeKey('r'))

	if m.gameState.Steps != 0 {
		t.Errorf("Steps after restart = %d, want 0", m.gameState.Steps)
	}
	if m.sessionID == first {
		t.Error("restart should start a new session")
	}

	results, _ := store.RecentResults(10)
	if len(results) != 1 || results[0].SessionID != first {
		t.Errorf("expected the abandoned session to be saved, got %v", results)
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := newTestModel(t, rollingcubes.New(), nil)

	// Back is ignored while playing
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored during play")
	}

	m = press(t, m, runeKey('p'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, rollingcubes.New(), nil)
	m = send(t, m, TickMsg{})

	if !strings.Contains(m.View(), "Steps: 0") {
		t.Error("view should show the step counter")
	}
}

func TestModelDefaultPlayer(t *testing.T) {
	m := NewModel(rollingcubes.New(), nil, core.DefaultConfig(), "")
	if m.player != DefaultPlayer {
		t.Errorf("player = %q, want %q", m.player, DefaultPlayer)
	}
}
