package explorer

import (
	"testing"

	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
	"github.com/jakoblorz/go-fexplorer/internal/logging"
	"github.com/jakoblorz/go-fexplorer/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSession_OperationsResolveAgainstCursor(t *testing.T) {
	mock := filesystem.NewMockFileSystem()
	mock.AddDir("/home/user/projects")
	mock.AddFile("/home/user/readme.md", []byte("# hi"))

	s := NewSession(mock, logging.NewTestLogger(), Options{StartDir: "/home/user"})
	require.Equal(t, "/home/user", s.Dir())

	_, err := s.ChangeDirectory("projects")
	require.NoError(t, err)
	require.Equal(t, "/home/user/projects", s.Dir())

	path, err := s.CreateFile("main.go")
	require.NoError(t, err)
	require.Equal(t, "/home/user/projects/main.go", path)
	require.True(t, mock.Exists("/home/user/projects/main.go"))
	require.False(t, mock.Exists("/home/user/main.go"))

	_, err = s.CreateDirectory("pkg")
	require.NoError(t, err)

	require.NoError(t, s.Copy("main.go", "main_copy.go"))
	require.NoError(t, s.Move("main_copy.go", "pkg/moved.go"))

	result, err := s.Search("main")
	require.NoError(t, err)
	require.Equal(t, []string{"/home/user/projects/main.go"}, result.Paths)

	mode, err := s.Chmod("main.go", "600")
	require.NoError(t, err)
	require.Equal(t, "600", models.OctalPermissions(mode))

	entry, err := s.Info("pkg/moved.go")
	require.NoError(t, err)
	require.Equal(t, "moved.go", entry.Name)

	kind, err := s.Delete("pkg/moved.go")
	require.NoError(t, err)
	require.Equal(t, models.KindFile, kind)

	entries, err := s.List(false)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "pkg", entries[0].Name)
	require.Equal(t, "main.go", entries[1].Name)

	_, err = s.ChangeDirectory("..")
	require.NoError(t, err)
	_, err = s.ChangeDirectory("readme.md")
	require.ErrorIs(t, err, fxerrors.ErrUnreachable)
	require.Equal(t, "/home/user", s.Dir())
}

func TestSession_DefaultsToWorkingDirectory(t *testing.T) {
	mock := filesystem.NewMockFileSystem()
	mock.AddDir("/workspace")

	s := NewSession(mock, logging.NewTestLogger(), Options{})
	require.Equal(t, "/workspace", s.Dir())
}
