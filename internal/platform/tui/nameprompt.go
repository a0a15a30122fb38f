package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxNameLength bounds player names so they fit the scoreboard.
const maxNameLength = 24

// NamePromptModel asks for the player name recorded with results.
type NamePromptModel struct {
	input     textinput.Model
	width     int
	name      string
	done      bool
	cancelled bool
}

// NewNamePromptModel creates a prompt pre-filled with suggestion.
func NewNamePromptModel(suggestion string, width int) NamePromptModel {
	ti := textinput.New()
	ti.Placeholder = DefaultPlayer
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.SetValue(suggestion)
	ti.Focus()

	return NamePromptModel{
		input: ti,
		width: width,
	}
}

// Init starts the cursor blinking.
func (m NamePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NamePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.name = SanitizeName(m.input.Value())
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NamePromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "Who is playing?", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(dimStyle, "Enter: Confirm  |  Esc: Cancel", m.width))
	b.WriteString("\n")
	return b.String()
}

// Name returns the confirmed name, DefaultPlayer if left blank.
func (m NamePromptModel) Name() string {
	return m.name
}

// Cancelled reports whether the prompt was dismissed.
func (m NamePromptModel) Cancelled() bool {
	return m.cancelled
}

// SanitizeName trims whitespace and falls back to DefaultPlayer.
func SanitizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if r := []rune(name); len(r) > maxNameLength {
		name = strings.TrimSpace(string(r[:maxNameLength]))
	}
	if name == "" {
		return DefaultPlayer
	}
	return name
}

// RunNamePrompt asks for a player name. ok is false if the user cancelled.
func RunNamePrompt(suggestion string, width int) (name string, ok bool, err error) {
	p := tea.NewProgram(NewNamePromptModel(suggestion, width))

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isPrompt := finalModel.(NamePromptModel)
	if !isPrompt || m.Cancelled() {
		return "", false, nil
	}
	return m.Name(), true, nil
}
