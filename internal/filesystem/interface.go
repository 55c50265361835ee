package filesystem

import (
	"io"
	"io/fs"
)

// FileSystem provides an abstraction over file operations for testability
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	Open(path string) (io.ReadCloser, error)
	OpenFile(path string, flag int, perm fs.FileMode) (io.WriteCloser, error)
	Unlink(path string) error
	Rename(oldpath, newpath string) error
	Chmod(path string, mode fs.FileMode) error

	// Directory operations

	// ReadDir enumerates path in the order the platform yields entries.
	// The result is not sorted.
	ReadDir(path string) ([]fs.DirEntry, error)
	Mkdir(path string, perm fs.FileMode) error
	Rmdir(path string) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)
	EvalSymlinks(path string) (string, error)
	Getwd() (string, error)

	// ProbeEnter reports whether path is a directory the process may enter.
	// It never changes the process working directory.
	ProbeEnter(path string) error

	// Identity resolution is best-effort; ok is false when no name is known.
	LookupUser(uid uint32) (name string, ok bool)
	LookupGroup(gid uint32) (name string, ok bool)
}
