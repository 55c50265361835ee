// Package errors provides the error taxonomy shared by fexplorer operations.
//
// Every filesystem-touching operation returns an *OpError whose Kind is one of
// the sentinel values below, so callers can branch with errors.Is without
// inspecting OS-specific errno values.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// Error categories for fexplorer operations
var (
	ErrNotFound         = errors.New("not found")
	ErrNotADirectory    = errors.New("not a directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotEmpty         = errors.New("directory not empty")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrIO               = errors.New("i/o error")
	ErrUnreachable      = errors.New("directory unreachable")
)

// OpError records a failed operation together with its category and cause.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	msg := e.Kind.Error()
	if e.Err != nil {
		if cause := unwrapPathError(e.Err).Error(); cause != msg {
			msg = fmt.Sprintf("%s: %s", msg, cause)
		}
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, msg)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) Is(target error) bool {
	return e.Kind == target
}

// New creates an OpError of the given kind.
func New(op, path string, kind, err error) *OpError {
	return &OpError{Op: op, Path: path, Kind: kind, Err: err}
}

// InvalidArgument creates an OpError for rejected user input. No filesystem
// call has been made when this error is returned.
func InvalidArgument(op, path, message string) *OpError {
	return &OpError{Op: op, Path: path, Kind: ErrInvalidArgument, Err: errors.New(message)}
}

// Classify wraps an OS error into an OpError with the matching category.
// A nil error stays nil; an error that already is an *OpError is returned as is.
func Classify(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}

	return &OpError{Op: op, Path: path, Kind: KindOf(err), Err: err}
}

// KindOf returns the category sentinel for an OS error.
func KindOf(err error) error {
	switch {
	case errors.Is(err, unix.ENOTEMPTY):
		return ErrNotEmpty
	case errors.Is(err, unix.ENOTDIR):
		return ErrNotADirectory
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, fs.ErrInvalid):
		return ErrInvalidArgument
	default:
		return ErrIO
	}
}

// NavigationError is returned when the cursor cannot enter a resolved path.
// The cursor keeps its previous value whenever this error is returned.
type NavigationError struct {
	Token    string
	Resolved string
	Err      error
}

func (e *NavigationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot change to %s: %v", e.Resolved, unwrapPathError(e.Err))
	}
	return fmt.Sprintf("cannot change to %s", e.Resolved)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

func (e *NavigationError) Is(target error) bool {
	return target == ErrUnreachable
}

// IsNotFound checks if an error represents a missing path
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument checks if an error was caused by rejected input
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnreachable checks if an error is a navigation failure
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// Join combines errors, filtering out nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}
