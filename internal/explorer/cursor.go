package explorer

import (
	"log/slog"
	"strings"

	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
)

// Cursor holds the current directory that relative operations resolve
// against. Navigation resolves a token without cleaning it: only a bare ".."
// is special, absolute tokens are used verbatim and anything else is appended
// to the current path.
type Cursor struct {
	fs     filesystem.FileSystem
	logger *slog.Logger
	path   string
}

// NewCursor creates a cursor at start. An empty start uses the working
// directory reported by fs, falling back to the root when that is unavailable
// or not absolute.
func NewCursor(fs filesystem.FileSystem, logger *slog.Logger, start string) *Cursor {
	if start == "" {
		wd, err := fs.Getwd()
		if err != nil {
			logger.Debug("working directory unavailable, starting at root", "error", err)
		}
		start = wd
	}
	if !strings.HasPrefix(start, separator) {
		start = separator
	}

	return &Cursor{
		fs:     fs,
		logger: logger,
		path:   start,
	}
}

// Path returns the current directory
func (c *Cursor) Path() string {
	return c.path
}

// Resolve computes the path token refers to without touching the filesystem.
func (c *Cursor) Resolve(token string) (string, error) {
	if token == "" {
		return "", fxerrors.InvalidArgument("cd", "", "directory path cannot be empty")
	}

	switch {
	case token == "..":
		return parentPath(c.path), nil
	case strings.HasPrefix(token, separator):
		return token, nil
	default:
		return joinPath(c.path, token), nil
	}
}

// Navigate moves the cursor to token. The stored path only changes after the
// resolved path has been confirmed enterable; on failure the cursor is left
// untouched and a *errors.NavigationError is returned.
func (c *Cursor) Navigate(token string) (string, error) {
	resolved, err := c.Resolve(token)
	if err != nil {
		return c.path, err
	}

	if err := c.fs.ProbeEnter(resolved); err != nil {
		c.logger.Debug("navigation rejected", "op", "cd", "path", resolved, "error", err)
		return c.path, &fxerrors.NavigationError{Token: token, Resolved: resolved, Err: err}
	}

	c.logger.Debug("navigated", "op", "cd", "from", c.path, "to", resolved)
	c.path = resolved
	return c.path, nil
}
