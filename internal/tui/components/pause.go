package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-fexplorer/internal/tui"
)

// PauseModel waits for the user to press enter before the menu is shown again
type PauseModel struct {
	message string
	done    bool
	quit    bool
}

// NewPause creates a new pause component
func NewPause(message string) PauseModel {
	return PauseModel{message: message}
}

// Init initializes the component
func (m PauseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "ctrl+d", "esc":
			m.done = true
			m.quit = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the component
func (m PauseModel) View() string {
	if m.done {
		return ""
	}
	return "\n" + tui.HelpStyle.Render(m.message) + "\n"
}

// IsDone returns whether the user dismissed the pause
func (m PauseModel) IsDone() bool {
	return m.done
}

// WantsQuit reports whether the pause was dismissed with an abort key
func (m PauseModel) WantsQuit() bool {
	return m.quit
}
