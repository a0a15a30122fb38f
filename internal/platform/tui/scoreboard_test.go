package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollingcubes/internal/games/rollingcubes"
	"github.com/vovakirdan/rollingcubes/internal/storage"
)

func TestResultRows(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	rows := ResultRows([]storage.GameResult{
		{Player: "alice", Solved: true, Steps: 42, Duration: 95500 * time.Millisecond, CreatedAt: created},
		{Player: "bob", Solved: false, Steps: 3, Duration: 4 * time.Second, CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	want := []string{"#1", "alice", "solved", "42", "1:35.5", "Mar 01 12:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][2] != "gave up" {
		t.Errorf("unexpected second row %v", rows[1])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{2*time.Minute + 5*time.Second, "2:05.0"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestScoreboardToggle(t *testing.T) {
	store := openStore(t)
	classic := rollingcubes.ClassicPuzzle()
	saved := []storage.GameResult{
		{Puzzle: classic, Player: "alice", Solved: true, Steps: 10, Duration: time.Minute},
		{Puzzle: string(rollingcubes.VariantTutorial), Player: "carol", Solved: true, Steps: 1, Duration: 16 * time.Millisecond},
		{Puzzle: classic, Player: "bob", Solved: false, Steps: 2, Duration: time.Second},
	}
	for _, r := range saved {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.view != ViewBest || len(m.results) != 1 || m.results[0].Player != "alice" {
		t.Fatalf("best view should show only alice's classic solve, got %v", m.results)
	}
	if !strings.Contains(m.View(), "BEST TIMES") {
		t.Error("view should show the best times heading")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != ViewRecent || len(m.results) != 3 {
		t.Fatalf("recent view should show 3 results, got %d", len(m.results))
	}
	if m.results[0].Player != "bob" {
		t.Errorf("most recent result = %q, want bob", m.results[0].Player)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No solved puzzles yet") {
		t.Error("empty scoreboard should show a placeholder")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alice", "alice"},
		{"  bob  ", "bob"},
		{"ann   marie", "ann marie"},
		{"", DefaultPlayer},
		{"   ", DefaultPlayer},
		{strings.Repeat("x", 40), strings.Repeat("x", maxNameLength)},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNamePrompt(t *testing.T) {
	m := NewNamePromptModel("", 80)
	for _, r := range "carol" {
		next, _ := m.Update(runeKey(r))
		m = next.(NamePromptModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(NamePromptModel)

	if m.Name() != "carol" || m.Cancelled() {
		t.Errorf("Name() = %q, cancelled = %v", m.Name(), m.Cancelled())
	}

	m = NewNamePromptModel("dave", 80)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(NamePromptModel).Cancelled() {
		t.Error("esc should cancel the prompt")
	}
}
