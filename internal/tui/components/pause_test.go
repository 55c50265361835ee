package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestPauseModel(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		wantQuit bool
	}{
		{name: "enter continues", key: tea.KeyMsg{Type: tea.KeyEnter}},
		{name: "space continues", key: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}},
		{name: "ctrl+c quits", key: tea.KeyMsg{Type: tea.KeyCtrlC}, wantQuit: true},
		{name: "esc quits", key: tea.KeyMsg{Type: tea.KeyEsc}, wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPause("Press Enter to continue...")
			require.Contains(t, m.View(), "Press Enter to continue...")

			next, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)

			pause := next.(PauseModel)
			require.True(t, pause.IsDone())
			require.Equal(t, tt.wantQuit, pause.WantsQuit())
			require.Empty(t, pause.View())
		})
	}
}

func TestPauseModel_IgnoresOtherKeys(t *testing.T) {
	m := NewPause("wait")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Nil(t, cmd)
	require.False(t, next.(PauseModel).IsDone())
}
