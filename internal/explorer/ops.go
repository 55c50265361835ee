package explorer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
	"github.com/jakoblorz/go-fexplorer/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	dirCreateMode  fs.FileMode = 0o755
	fileCreateMode fs.FileMode = 0o644
	copyBufferSize             = 4096

	tempAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Ops implements the single-step file operations. Every method takes the
// directory to resolve names against explicitly; Ops keeps no cursor.
type Ops struct {
	fs     filesystem.FileSystem
	logger *slog.Logger

	// tempID generates the suffix of temporary copy targets
	tempID func() (string, error)
}

// NewOps creates a new Ops
func NewOps(fs filesystem.FileSystem, logger *slog.Logger) *Ops {
	return &Ops{
		fs:     fs,
		logger: logger,
		tempID: func() (string, error) {
			return gonanoid.Generate(tempAlphabet, 8)
		},
	}
}

// List enumerates dir. Entries whose metadata cannot be read are left out.
// In simple mode directories come first, then files, each sorted by name;
// detailed mode keeps the enumeration order.
func (o *Ops) List(dir string, detailed bool) ([]models.Entry, error) {
	dirEntries, err := o.fs.ReadDir(dir)
	if err != nil {
		return nil, fxerrors.Classify("list", dir, err)
	}

	entries := make([]models.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if name == "." {
			continue
		}

		fullPath := joinPath(dir, name)
		info, err := o.fs.Stat(fullPath)
		if err != nil {
			o.logger.Debug("skipping entry without metadata", "op", "list", "path", fullPath, "error", err)
			continue
		}
		entries = append(entries, o.entryFromInfo(name, fullPath, info))
	}

	if !detailed {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].IsDir() != entries[j].IsDir() {
				return entries[i].IsDir()
			}
			return entries[i].Name < entries[j].Name
		})
	}

	return entries, nil
}

// CreateDirectory creates name inside dir with mode 0755
func (o *Ops) CreateDirectory(dir, name string) (string, error) {
	if err := validateNewName("mkdir", name); err != nil {
		return "", err
	}

	fullPath := resolvePath(dir, name)
	if err := o.fs.Mkdir(fullPath, dirCreateMode); err != nil {
		return "", fxerrors.Classify("mkdir", fullPath, err)
	}

	o.logger.Debug("directory created", "op", "mkdir", "path", fullPath)
	return fullPath, nil
}

// CreateFile creates an empty file inside dir with mode 0644. An existing
// file is opened without truncation and left as it is.
func (o *Ops) CreateFile(dir, name string) (string, error) {
	if err := validateNewName("touch", name); err != nil {
		return "", err
	}

	fullPath := resolvePath(dir, name)
	f, err := o.fs.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY, fileCreateMode)
	if err != nil {
		return "", fxerrors.Classify("touch", fullPath, err)
	}
	if err := f.Close(); err != nil {
		return "", fxerrors.Classify("touch", fullPath, err)
	}

	o.logger.Debug("file created", "op", "touch", "path", fullPath)
	return fullPath, nil
}

// Delete removes a file, or a directory if it is empty. It returns the kind
// of the removed entry. Symbolic links are removed, not their targets.
func (o *Ops) Delete(dir, name string) (models.EntryKind, error) {
	if err := validateName("delete", name); err != nil {
		return models.KindUnknown, err
	}

	fullPath := resolvePath(dir, name)
	info, err := o.fs.Lstat(fullPath)
	if err != nil {
		return models.KindUnknown, fxerrors.Classify("delete", fullPath, err)
	}

	kind := models.KindFromMode(info.Mode())
	if kind == models.KindDirectory {
		err = o.fs.Rmdir(fullPath)
	} else {
		err = o.fs.Unlink(fullPath)
	}
	if err != nil {
		return kind, fxerrors.Classify("delete", fullPath, err)
	}

	o.logger.Debug("entry deleted", "op", "delete", "path", fullPath, "kind", kind.String())
	return kind, nil
}

// Copy duplicates the regular file src to dst, both resolved against dir. The
// bytes are written to a temporary sibling of dst which receives the source
// permission bits and is then renamed over dst, so a failed copy never leaves
// a partial dst behind.
func (o *Ops) Copy(dir, src, dst string) error {
	if err := validateName("copy", src); err != nil {
		return err
	}
	if err := validateName("copy", dst); err != nil {
		return err
	}

	srcPath := resolvePath(dir, src)
	dstPath := resolvePath(dir, dst)

	info, err := o.fs.Stat(srcPath)
	if err != nil {
		return fxerrors.Classify("copy", srcPath, err)
	}
	if info.IsDir() {
		return fxerrors.InvalidArgument("copy", srcPath, "source is a directory")
	}

	id, err := o.tempID()
	if err != nil {
		return fxerrors.New("copy", dstPath, fxerrors.ErrIO, fmt.Errorf("failed to generate temporary name: %w", err))
	}
	tmpPath := filepath.Join(filepath.Dir(dstPath), "."+filepath.Base(dstPath)+".fexplorer-"+id)

	if err := o.copyContents(srcPath, tmpPath); err != nil {
		o.discard(tmpPath)
		return fxerrors.Classify("copy", dstPath, err)
	}
	if err := o.fs.Chmod(tmpPath, permissionBits(info.Mode())); err != nil {
		o.discard(tmpPath)
		return fxerrors.Classify("copy", dstPath, err)
	}
	if err := o.fs.Rename(tmpPath, dstPath); err != nil {
		o.discard(tmpPath)
		return fxerrors.Classify("copy", dstPath, err)
	}

	o.logger.Debug("file copied", "op", "copy", "from", srcPath, "to", dstPath, "bytes", info.Size())
	return nil
}

// copyContents streams src into a newly created dst. Both handles are closed
// on every path; a short write is an error.
func (o *Ops) copyContents(srcPath, dstPath string) (err error) {
	in, err := o.fs.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := o.fs.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	buf := make([]byte, copyBufferSize)
	_, err = io.CopyBuffer(out, in, buf)
	return err
}

func (o *Ops) discard(path string) {
	if err := o.fs.Unlink(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		o.logger.Warn("failed to remove temporary file", "path", path, "error", err)
	}
}

// Move renames src to dst, both resolved against dir
func (o *Ops) Move(dir, src, dst string) error {
	if err := validateName("move", src); err != nil {
		return err
	}
	if err := validateName("move", dst); err != nil {
		return err
	}

	srcPath := resolvePath(dir, src)
	dstPath := resolvePath(dir, dst)
	if err := o.fs.Rename(srcPath, dstPath); err != nil {
		return fxerrors.Classify("move", srcPath, err)
	}

	o.logger.Debug("entry moved", "op", "move", "from", srcPath, "to", dstPath)
	return nil
}

// Chmod sets the permission bits of name from a 3-digit octal string. The
// string is validated before any filesystem call is made.
func (o *Ops) Chmod(dir, name, perms string) (fs.FileMode, error) {
	if err := validateName("chmod", name); err != nil {
		return 0, err
	}

	fullPath := resolvePath(dir, name)
	mode, err := models.ParsePermissions(perms)
	if err != nil {
		return 0, fxerrors.InvalidArgument("chmod", fullPath, err.Error())
	}

	if err := o.fs.Chmod(fullPath, mode); err != nil {
		return 0, fxerrors.Classify("chmod", fullPath, err)
	}

	o.logger.Debug("permissions changed", "op", "chmod", "path", fullPath, "mode", models.OctalPermissions(mode))
	return mode, nil
}

// Info returns the metadata of name, including the MIME type of regular files
func (o *Ops) Info(dir, name string) (*models.Entry, error) {
	if err := validateName("info", name); err != nil {
		return nil, err
	}

	fullPath := resolvePath(dir, name)
	info, err := o.fs.Stat(fullPath)
	if err != nil {
		return nil, fxerrors.Classify("info", fullPath, err)
	}

	entry := o.entryFromInfo(filepath.Base(fullPath), fullPath, info)
	if info.Mode().IsRegular() {
		entry.MIMEType = o.detectMIME(fullPath)
	}

	return &entry, nil
}

func (o *Ops) detectMIME(path string) string {
	r, err := o.fs.Open(path)
	if err != nil {
		o.logger.Debug("mime detection skipped", "path", path, "error", err)
		return ""
	}
	defer r.Close()

	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		o.logger.Debug("mime detection failed", "path", path, "error", err)
		return ""
	}
	return mtype.String()
}

func (o *Ops) entryFromInfo(name, fullPath string, info fs.FileInfo) models.Entry {
	attrs := filesystem.AttributesOf(info)

	owner, ok := o.fs.LookupUser(attrs.UID)
	if !ok {
		owner = strconv.FormatUint(uint64(attrs.UID), 10)
	}
	group, ok := o.fs.LookupGroup(attrs.GID)
	if !ok {
		group = strconv.FormatUint(uint64(attrs.GID), 10)
	}

	return models.Entry{
		Name:       name,
		Path:       fullPath,
		Kind:       models.KindFromMode(info.Mode()),
		Size:       info.Size(),
		Mode:       info.Mode(),
		UID:        attrs.UID,
		GID:        attrs.GID,
		Owner:      owner,
		Group:      group,
		ModTime:    info.ModTime(),
		AccessTime: attrs.AccessTime,
		ChangeTime: attrs.ChangeTime,
	}
}

func permissionBits(mode fs.FileMode) fs.FileMode {
	return mode & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)
}

func validateName(op, name string) error {
	if name == "" {
		return fxerrors.InvalidArgument(op, "", "name cannot be empty")
	}
	return nil
}

func validateNewName(op, name string) error {
	if err := validateName(op, name); err != nil {
		return err
	}
	if strings.Contains(name, separator) {
		return fxerrors.InvalidArgument(op, name, "name cannot contain '/'")
	}
	if name == "." || name == ".." {
		return fxerrors.InvalidArgument(op, name, "name is reserved")
	}
	return nil
}
