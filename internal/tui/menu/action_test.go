package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{input: "0", want: ActionExit},
		{input: "1", want: ActionList},
		{input: " 12 ", want: ActionChmod},
		{input: "13", want: ActionInvalid},
		{input: "-1", want: ActionInvalid},
		{input: "", want: ActionInvalid},
		{input: "list", want: ActionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseAction(tt.input))
		})
	}
}

func TestSectionsCoverEveryAction(t *testing.T) {
	seen := map[Action]bool{}
	for _, s := range sections {
		for _, a := range s.actions {
			require.False(t, seen[a], "action %d listed twice", a)
			seen[a] = true
		}
	}
	require.Len(t, seen, len(labels))
}
