package explorer

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
	"github.com/jakoblorz/go-fexplorer/internal/models"
)

// ErrStopSearch can be returned by a MatchFunc to end a walk early. Walk then
// returns nil.
var ErrStopSearch = errors.New("stop search")

// SearchOptions tunes the recursive search
type SearchOptions struct {
	// FollowSymlinks descends into symbolic links that point at directories.
	// Directories already visited (by resolved path) are skipped, so link
	// cycles terminate.
	FollowSymlinks bool

	// IgnoreFile names a gitignore-style file looked up in the search root.
	// Matching entries are neither reported nor descended into. Empty disables it.
	IgnoreFile string
}

// MatchFunc receives each matching absolute path. Returning an error stops
// the walk and the error is passed back to the caller of Walk.
type MatchFunc func(path string) error

// Searcher walks directory trees collecting entries whose name contains a pattern
type Searcher struct {
	fs     filesystem.FileSystem
	logger *slog.Logger
	opts   SearchOptions
}

// NewSearcher creates a new Searcher
func NewSearcher(fs filesystem.FileSystem, logger *slog.Logger, opts SearchOptions) *Searcher {
	return &Searcher{
		fs:     fs,
		logger: logger,
		opts:   opts,
	}
}

// Search walks root depth-first and returns every descendant whose name
// contains pattern (case-sensitive substring). The order is the enumeration
// order of the underlying filesystem and must not be relied upon.
func (s *Searcher) Search(root, pattern string) (*models.SearchResult, error) {
	result := &models.SearchResult{
		Root:    root,
		Pattern: pattern,
		Paths:   []string{},
	}

	err := s.Walk(root, pattern, func(path string) error {
		result.Paths = append(result.Paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Walk is the streaming form of Search: fn is called for each match as it is
// found. Directories that cannot be opened are skipped silently.
func (s *Searcher) Walk(root, pattern string, fn MatchFunc) error {
	info, err := s.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fxerrors.Classify("search", root, err)
		}
		s.logger.Debug("search root not accessible", "op", "search", "path", root, "error", err)
		return nil
	}
	if !info.IsDir() {
		return fxerrors.New("search", root, fxerrors.ErrNotADirectory, nil)
	}

	w := &walker{
		Searcher: s,
		root:     root,
		pattern:  pattern,
		fn:       fn,
		ignore:   s.loadIgnore(root),
	}
	if s.opts.FollowSymlinks {
		w.visited = make(map[string]struct{})
		w.markVisited(root)
	}

	err = w.walk(root)
	if errors.Is(err, ErrStopSearch) {
		return nil
	}
	return err
}

func (s *Searcher) loadIgnore(root string) gitignore.GitIgnore {
	if s.opts.IgnoreFile == "" {
		return nil
	}

	ignorePath := joinPath(root, s.opts.IgnoreFile)
	data, err := s.fs.ReadFile(ignorePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read ignore file", "path", ignorePath, "error", err)
		}
		return nil
	}

	return gitignore.New(bytes.NewReader(data), root, nil)
}

// walker carries the state of one Walk call
type walker struct {
	*Searcher
	root    string
	pattern string
	fn      MatchFunc
	ignore  gitignore.GitIgnore
	visited map[string]struct{}
}

func (w *walker) walk(dir string) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.logger.Debug("skipping unreadable directory", "op", "search", "path", dir, "error", err)
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		fullPath := joinPath(dir, name)
		kind, err := models.NewLazyKind(entry.Type(), func() (fs.FileInfo, error) {
			return w.fs.Lstat(fullPath)
		}).Resolve()
		if err != nil {
			w.logger.Debug("entry vanished during search", "op", "search", "path", fullPath, "error", err)
			continue
		}

		descend := kind == models.KindDirectory
		if kind == models.KindSymlink && w.visited != nil {
			descend = w.isDirLink(fullPath)
		}

		if w.ignored(fullPath, descend) {
			continue
		}

		if strings.Contains(name, w.pattern) {
			if err := w.fn(fullPath); err != nil {
				return err
			}
		}

		if !descend {
			continue
		}
		if w.visited != nil && !w.markVisited(fullPath) {
			w.logger.Debug("skipping already visited directory", "op", "search", "path", fullPath)
			continue
		}
		if err := w.walk(fullPath); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) isDirLink(path string) bool {
	info, err := w.fs.Stat(path)
	return err == nil && info.IsDir()
}

// markVisited records the resolved form of path and reports whether it was new.
func (w *walker) markVisited(path string) bool {
	resolved, err := w.fs.EvalSymlinks(path)
	if err != nil {
		return false
	}
	if _, seen := w.visited[resolved]; seen {
		return false
	}
	w.visited[resolved] = struct{}{}
	return true
}

func (w *walker) ignored(path string, isDir bool) bool {
	if w.ignore == nil {
		return false
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}

	match := w.ignore.Relative(filepath.ToSlash(rel), isDir)
	return match != nil && match.Ignore()
}
