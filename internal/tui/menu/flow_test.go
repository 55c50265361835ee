package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jakoblorz/go-fexplorer/internal/explorer"
	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
	"github.com/jakoblorz/go-fexplorer/internal/logging"
	"github.com/jakoblorz/go-fexplorer/internal/models"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, mock *filesystem.MockFileSystem, start string, lines ...string) (string, string, *explorer.Session) {
	t.Helper()

	session := explorer.NewSession(mock, logging.NewTestLogger(), explorer.Options{StartDir: start})
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")

	var out, errOut bytes.Buffer
	flow := NewFlow(session, NewLinePrompter(input, &out), &out, &errOut, logging.NewTestLogger())
	require.NoError(t, flow.Run())

	return out.String(), errOut.String(), session
}

func TestFlow_Commands(t *testing.T) {
	mock := filesystem.NewMockFileSystem()
	mock.AddDir("/home")

	out, errOut, session := runScript(t, mock, "/home",
		"5", "proj", "",
		"3", "proj", "",
		"6", "main.go", "",
		"4", "",
		"8", "main.go", "main_test.go", "",
		"10", "main", "",
		"12", "main.go", "75", "",
		"12", "main.go", "700", "",
		"9", "main_test.go", "renamed.go", "",
		"7", "renamed.go", "",
		"0",
	)

	require.Contains(t, out, "Welcome to File Explorer")
	require.Contains(t, out, "✓ Directory created: proj")
	require.Contains(t, out, "✓ Changed to: /home/proj")
	require.Contains(t, out, "✓ File created: main.go")
	require.Contains(t, out, "✓ Current path: /home/proj")
	require.Contains(t, out, "✓ File copied: main.go -> main_test.go")
	require.Contains(t, out, "Searching for 'main' in /home/proj...")
	require.Contains(t, out, "Found 2 result(s):")
	require.Contains(t, out, "  /home/proj/main.go")
	require.Contains(t, out, "✓ Permissions changed: main.go -> 700")
	require.Contains(t, out, "✓ Moved/Renamed: main_test.go -> renamed.go")
	require.Contains(t, out, "✓ File deleted: renamed.go")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "Thank you for using File Explorer!"))

	require.Contains(t, errOut, "✗ Error:")
	require.Contains(t, errOut, "invalid argument")
	require.Equal(t, 1, strings.Count(errOut, "✗"))

	require.Equal(t, "/home/proj", session.Dir())
	require.Equal(t, "700", modeOf(t, mock, "/home/proj/main.go"))
	require.False(t, mock.Exists("/home/proj/renamed.go"))
}

func modeOf(t *testing.T, mock *filesystem.MockFileSystem, path string) string {
	t.Helper()
	info, err := mock.Stat(path)
	require.NoError(t, err)
	return models.OctalPermissions(info.Mode())
}

func TestFlow_FailuresKeepLooping(t *testing.T) {
	mock := filesystem.NewMockFileSystem()
	mock.AddDir("/x/y")
	mock.AddFile("/x/y/full/file.txt", []byte("data"))

	out, errOut, session := runScript(t, mock, "/x/y",
		"3", "missing", "",
		"7", "full", "",
		"42", "",
		"abc", "",
		"11", "ghost", "",
		"3", "..", "",
		"0",
	)

	require.Contains(t, errOut, "cannot change to /x/y/missing")
	require.Contains(t, errOut, "directory not empty")
	require.Equal(t, 2, strings.Count(errOut, "invalid choice, please try again"))
	require.Contains(t, errOut, "not found")
	require.Contains(t, out, "✓ Changed to: /x")
	require.Equal(t, "/x", session.Dir())
	require.True(t, mock.Exists("/x/y/full/file.txt"))
}

func TestFlow_EndOfInputQuits(t *testing.T) {
	mock := filesystem.NewMockFileSystem()
	mock.AddFile("/data/a.txt", []byte("a"))
	mock.AddDir("/data/sub")

	t.Run("at the menu", func(t *testing.T) {
		out, _, _ := runScript(t, mock, "/data", "1")
		require.Contains(t, out, "[DIR]  sub")
		require.Contains(t, out, "       a.txt")
		require.True(t, strings.HasSuffix(strings.TrimSpace(out), "Thank you for using File Explorer!"))
	})

	t.Run("inside a prompt", func(t *testing.T) {
		session := explorer.NewSession(mock, logging.NewTestLogger(), explorer.Options{StartDir: "/data"})
		var out bytes.Buffer
		flow := NewFlow(session, NewLinePrompter(strings.NewReader("5\n"), &out), &out, &out, logging.NewTestLogger())

		require.NoError(t, flow.Run())
		require.Contains(t, out.String(), "Enter directory name: ")
		require.Contains(t, out.String(), "Thank you for using File Explorer!")
	})
}
