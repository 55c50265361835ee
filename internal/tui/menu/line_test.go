package menu

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	t.Run("strips line endings", func(t *testing.T) {
		var out strings.Builder
		p := NewLinePrompter(strings.NewReader("my file.txt\r\nlast"), &out)

		got, err := p.Input("Enter file name", nil)
		require.NoError(t, err)
		require.Equal(t, "my file.txt", got)
		require.Equal(t, "Enter file name: ", out.String())

		got, err = p.Input("again", nil)
		require.NoError(t, err)
		require.Equal(t, "last", got)

		_, err = p.Input("eof", nil)
		require.ErrorIs(t, err, ErrQuit)
	})

	t.Run("does not validate", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("\n"), io.Discard)
		got, err := p.Input("name", notEmpty)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
