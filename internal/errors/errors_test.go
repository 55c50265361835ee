package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"missing", &fs.PathError{Op: "stat", Path: "/x", Err: unix.ENOENT}, ErrNotFound},
		{"exists", &fs.PathError{Op: "mkdir", Path: "/x", Err: unix.EEXIST}, ErrAlreadyExists},
		{"denied", &fs.PathError{Op: "open", Path: "/x", Err: unix.EACCES}, ErrPermissionDenied},
		{"not empty", &fs.PathError{Op: "remove", Path: "/x", Err: unix.ENOTEMPTY}, ErrNotEmpty},
		{"not a directory", &fs.PathError{Op: "open", Path: "/x/y", Err: unix.ENOTDIR}, ErrNotADirectory},
		{"other", &fs.PathError{Op: "write", Path: "/x", Err: unix.EIO}, ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("op", "/x", tt.err)
			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassify_NilAndOpError(t *testing.T) {
	require.NoError(t, Classify("op", "/x", nil))

	original := InvalidArgument("chmod", "/x", "bad mode")
	wrapped := fmt.Errorf("context: %w", original)
	require.Same(t, wrapped, Classify("other", "/y", wrapped))
}

func TestOpError_Message(t *testing.T) {
	err := New("delete", "/tmp/dir", ErrNotEmpty, &fs.PathError{Op: "remove", Path: "/tmp/dir", Err: unix.ENOTEMPTY})
	require.Equal(t, "delete /tmp/dir: directory not empty", err.Error())

	err = InvalidArgument("chmod", "", "permissions must be 3 octal digits")
	require.Equal(t, "chmod: invalid argument: permissions must be 3 octal digits", err.Error())
}

func TestOpError_RenameMessage(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		kind  error
		want  string
	}{
		{"missing source", unix.ENOENT, ErrNotFound, "move /a/src: not found: no such file or directory"},
		{"cross device", unix.EXDEV, ErrIO, "move /a/src: i/o error: invalid cross-device link"},
		{"not empty", unix.ENOTEMPTY, ErrNotEmpty, "move /a/src: directory not empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linkErr := &os.LinkError{Op: "rename", Old: "/a/src", New: "/b/dst", Err: tt.cause}

			err := Classify("move", "/a/src", linkErr)
			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, tt.cause)
			require.Equal(t, tt.want, err.Error())
		})
	}
}

func TestNavigationError(t *testing.T) {
	err := &NavigationError{Token: "nope", Resolved: "/tmp/nope", Err: &fs.PathError{Op: "stat", Path: "/tmp/nope", Err: unix.ENOENT}}

	require.True(t, IsUnreachable(err))
	require.False(t, errors.Is(err, ErrNotFound))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, "cannot change to /tmp/nope: no such file or directory", err.Error())
}
