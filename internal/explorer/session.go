package explorer

import (
	"io/fs"
	"log/slog"

	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
	"github.com/jakoblorz/go-fexplorer/internal/models"
)

// Options configures a Session
type Options struct {
	// StartDir is the initial cursor position; empty means the working directory
	StartDir string
	Search   SearchOptions
}

// Session is the execution context of one interactive run. It owns the
// cursor; each operation reads the cursor once and hands the directory to
// the stateless Ops and Searcher explicitly. The process working directory
// is never changed.
type Session struct {
	Cursor   *Cursor
	Ops      *Ops
	Searcher *Searcher
}

// NewSession creates a new Session
func NewSession(fs filesystem.FileSystem, logger *slog.Logger, opts Options) *Session {
	return &Session{
		Cursor:   NewCursor(fs, logger, opts.StartDir),
		Ops:      NewOps(fs, logger),
		Searcher: NewSearcher(fs, logger, opts.Search),
	}
}

// Dir returns the current directory
func (s *Session) Dir() string {
	return s.Cursor.Path()
}

// ChangeDirectory moves the cursor
func (s *Session) ChangeDirectory(token string) (string, error) {
	return s.Cursor.Navigate(token)
}

// List lists the current directory
func (s *Session) List(detailed bool) ([]models.Entry, error) {
	return s.Ops.List(s.Dir(), detailed)
}

// CreateDirectory creates a directory in the current directory
func (s *Session) CreateDirectory(name string) (string, error) {
	return s.Ops.CreateDirectory(s.Dir(), name)
}

// CreateFile creates a file in the current directory
func (s *Session) CreateFile(name string) (string, error) {
	return s.Ops.CreateFile(s.Dir(), name)
}

// Delete removes an entry of the current directory
func (s *Session) Delete(name string) (models.EntryKind, error) {
	return s.Ops.Delete(s.Dir(), name)
}

// Copy copies a file within the current directory
func (s *Session) Copy(src, dst string) error {
	return s.Ops.Copy(s.Dir(), src, dst)
}

// Move renames an entry within the current directory
func (s *Session) Move(src, dst string) error {
	return s.Ops.Move(s.Dir(), src, dst)
}

// Search searches below the current directory
func (s *Session) Search(pattern string) (*models.SearchResult, error) {
	return s.Searcher.Search(s.Dir(), pattern)
}

// Info describes an entry of the current directory
func (s *Session) Info(name string) (*models.Entry, error) {
	return s.Ops.Info(s.Dir(), name)
}

// Chmod changes permissions of an entry of the current directory
func (s *Session) Chmod(name, perms string) (fs.FileMode, error) {
	return s.Ops.Chmod(s.Dir(), name, perms)
}
