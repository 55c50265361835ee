package explorer

import (
	"testing"

	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
	"github.com/jakoblorz/go-fexplorer/internal/logging"
	"github.com/stretchr/testify/require"
)

func newTestCursor(t *testing.T, start string) (*Cursor, *filesystem.MockFileSystem) {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/x/y/z")
	fs.AddFile("/x/notes.txt", []byte("hello"))
	return NewCursor(fs, logging.NewTestLogger(), start), fs
}

func TestNewCursor_StartDirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir("/workspace")

	require.Equal(t, "/workspace", NewCursor(fs, logging.NewTestLogger(), "").Path())
	require.Equal(t, "/x", NewCursor(fs, logging.NewTestLogger(), "/x").Path())

	fs.SetCurrentDir("")
	require.Equal(t, "/", NewCursor(fs, logging.NewTestLogger(), "").Path())
}

func TestCursor_ParentChainStopsAtRoot(t *testing.T) {
	cursor, _ := newTestCursor(t, "/x/y")

	path, err := cursor.Navigate("..")
	require.NoError(t, err)
	require.Equal(t, "/x", path)

	path, err = cursor.Navigate("..")
	require.NoError(t, err)
	require.Equal(t, "/", path)

	path, err = cursor.Navigate("..")
	require.NoError(t, err)
	require.Equal(t, "/", path)
	require.Equal(t, "/", cursor.Path())
}

func TestCursor_RelativeAndAbsolute(t *testing.T) {
	cursor, _ := newTestCursor(t, "/")

	path, err := cursor.Navigate("x")
	require.NoError(t, err)
	require.Equal(t, "/x", path)

	path, err = cursor.Navigate("y/z")
	require.NoError(t, err)
	require.Equal(t, "/x/y/z", path)

	path, err = cursor.Navigate("/x/y")
	require.NoError(t, err)
	require.Equal(t, "/x/y", path)
}

func TestCursor_NoNormalization(t *testing.T) {
	cursor, _ := newTestCursor(t, "/x/y")

	resolved, err := cursor.Resolve("z/../z")
	require.NoError(t, err)
	require.Equal(t, "/x/y/z/../z", resolved)

	resolved, err = cursor.Resolve("./z")
	require.NoError(t, err)
	require.Equal(t, "/x/y/./z", resolved)
}

func TestCursor_UnreachableLeavesPathUnchanged(t *testing.T) {
	cursor, fs := newTestCursor(t, "/x")
	fs.Deny("/x/y")

	tests := []struct {
		name  string
		token string
	}{
		{"missing relative", "missing"},
		{"missing absolute", "/nowhere"},
		{"not a directory", "notes.txt"},
		{"permission denied", "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := cursor.Navigate(tt.token)
			require.Error(t, err)
			require.True(t, fxerrors.IsUnreachable(err))

			var navErr *fxerrors.NavigationError
			require.ErrorAs(t, err, &navErr)
			require.Equal(t, tt.token, navErr.Token)

			require.Equal(t, "/x", path)
			require.Equal(t, "/x", cursor.Path())
		})
	}
}

func TestCursor_EmptyTokenRejected(t *testing.T) {
	cursor, _ := newTestCursor(t, "/x")

	_, err := cursor.Navigate("")
	require.ErrorIs(t, err, fxerrors.ErrInvalidArgument)
	require.False(t, fxerrors.IsUnreachable(err))
	require.Equal(t, "/x", cursor.Path())
}

func TestCursor_WhitespaceNamedDirectory(t *testing.T) {
	cursor, fs := newTestCursor(t, "/x")

	_, err := cursor.Navigate("   ")
	require.True(t, fxerrors.IsUnreachable(err))
	require.Equal(t, "/x", cursor.Path())

	fs.AddDir("/x/ ")
	path, err := cursor.Navigate(" ")
	require.NoError(t, err)
	require.Equal(t, "/x/ ", path)
	require.Equal(t, "/x/ ", cursor.Path())
}
