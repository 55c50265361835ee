package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string
	users      map[uint32]string
	groups     map[uint32]string
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
	UID     uint32
	GID     uint32

	// Denied makes every access to the entry fail with a permission error.
	Denied bool
	// NoTypeHint hides the entry type from directory enumeration.
	NoTypeHint bool
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
	attrs   *Attributes
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return m.attrs }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info   fs.FileInfo
	noType bool
}

func (m *mockDirEntry) Name() string { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool  { return !m.noType && m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode {
	if m.noType {
		return fs.ModeIrregular
	}
	return m.info.Mode().Type()
}
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates a new MockFileSystem rooted at "/"
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/workspace",
		users:      map[uint32]string{0: "root"},
		groups:     map[uint32]string{0: "root"},
	}
	mfs.files["/"] = &MockFile{Mode: 0755 | fs.ModeDir, ModTime: time.Now(), IsDir: true}
	return mfs
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.ensureParents(cleanPath)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	mfs.ensureParents(cleanPath)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
}

// Exists reports whether path is present in the mock
func (mfs *MockFileSystem) Exists(path string) bool {
	_, _, err := mfs.lookup("stat", path)
	return err == nil
}

func (mfs *MockFileSystem) ensureParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    0755 | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		dir = filepath.Dir(dir)
	}
}

// Deny makes path inaccessible, as if permission were denied.
func (mfs *MockFileSystem) Deny(path string) {
	if file, exists := mfs.files[filepath.Clean(path)]; exists {
		file.Denied = true
	}
}

// HideTypeHint makes directory enumeration report an unknown type for path.
func (mfs *MockFileSystem) HideTypeHint(path string) {
	if file, exists := mfs.files[filepath.Clean(path)]; exists {
		file.NoTypeHint = true
	}
}

// SetOwner assigns ownership to path.
func (mfs *MockFileSystem) SetOwner(path string, uid, gid uint32) {
	if file, exists := mfs.files[filepath.Clean(path)]; exists {
		file.UID = uid
		file.GID = gid
	}
}

// AddUser registers a user name for LookupUser.
func (mfs *MockFileSystem) AddUser(uid uint32, name string) {
	mfs.users[uid] = name
}

// AddGroup registers a group name for LookupGroup.
func (mfs *MockFileSystem) AddGroup(gid uint32, name string) {
	mfs.groups[gid] = name
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// GetFiles returns all files in the mock filesystem (for debugging)
func (mfs *MockFileSystem) GetFiles() map[string]*MockFile {
	return mfs.files
}

// lookup resolves path and reports permission errors for denied entries or
// denied ancestors.
func (mfs *MockFileSystem) lookup(op, path string) (string, *MockFile, error) {
	cleanPath := filepath.Clean(path)
	for dir := filepath.Dir(cleanPath); ; dir = filepath.Dir(dir) {
		if parent, exists := mfs.files[dir]; exists {
			if !parent.IsDir {
				return cleanPath, nil, &fs.PathError{Op: op, Path: path, Err: unix.ENOTDIR}
			}
			if parent.Denied {
				return cleanPath, nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrPermission}
			}
		}
		if dir == "/" || dir == "." {
			break
		}
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return cleanPath, nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return cleanPath, file, nil
}

func (mfs *MockFileSystem) info(cleanPath string, file *MockFile) *mockFileInfo {
	return &mockFileInfo{
		name:    filepath.Base(cleanPath),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
		attrs: &Attributes{
			UID:        file.UID,
			GID:        file.GID,
			AccessTime: file.ModTime,
			ChangeTime: file.ModTime,
		},
	}
}

func (mfs *MockFileSystem) hasChildren(cleanPath string) bool {
	for p := range mfs.files {
		if p != cleanPath && filepath.Dir(p) == cleanPath {
			return true
		}
	}
	return false
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	_, file, err := mfs.lookup("open", path)
	if err != nil {
		return nil, err
	}
	if file.Denied {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: unix.EISDIR}
	}
	return bytes.Clone(file.Content), nil
}

func (mfs *MockFileSystem) Open(path string) (io.ReadCloser, error) {
	content, err := mfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// mockWriter buffers writes and commits them to the file on Close.
type mockWriter struct {
	mfs  *MockFileSystem
	path string
	buf  bytes.Buffer
}

func (w *mockWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *mockWriter) Close() error {
	file, exists := w.mfs.files[w.path]
	if !exists {
		return &fs.PathError{Op: "close", Path: w.path, Err: fs.ErrClosed}
	}
	file.Content = append(file.Content, w.buf.Bytes()...)
	file.ModTime = time.Now()
	return nil
}

func (mfs *MockFileSystem) OpenFile(path string, flag int, perm fs.FileMode) (io.WriteCloser, error) {
	cleanPath, file, err := mfs.lookup("open", path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if file == nil {
		if flag&os.O_CREATE == 0 {
			return nil, err
		}
		parent, exists := mfs.files[filepath.Dir(cleanPath)]
		if !exists || !parent.IsDir {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		file = &MockFile{Mode: perm.Perm(), ModTime: time.Now()}
		mfs.files[cleanPath] = file
	} else {
		if flag&os.O_EXCL != 0 {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrExist}
		}
		if file.IsDir {
			return nil, &fs.PathError{Op: "open", Path: path, Err: unix.EISDIR}
		}
		if file.Denied {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
		}
		if flag&os.O_TRUNC != 0 {
			file.Content = nil
		}
	}

	return &mockWriter{mfs: mfs, path: cleanPath}, nil
}

func (mfs *MockFileSystem) Unlink(path string) error {
	cleanPath, file, err := mfs.lookup("unlink", path)
	if err != nil {
		return err
	}
	if file.IsDir {
		return &fs.PathError{Op: "unlink", Path: path, Err: unix.EISDIR}
	}
	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) Rename(oldpath, newpath string) error {
	oldClean, file, err := mfs.lookup("rename", oldpath)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: errors.Unwrap(err)}
	}
	newClean := filepath.Clean(newpath)
	parent, exists := mfs.files[filepath.Dir(newClean)]
	if !exists || !parent.IsDir {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	if target, exists := mfs.files[newClean]; exists && target.IsDir && mfs.hasChildren(newClean) {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unix.ENOTEMPTY}
	}

	moved := make(map[string]*MockFile)
	prefix := oldClean + string(filepath.Separator)
	for p, f := range mfs.files {
		if strings.HasPrefix(p, prefix) {
			moved[newClean+string(filepath.Separator)+strings.TrimPrefix(p, prefix)] = f
			delete(mfs.files, p)
		}
	}
	delete(mfs.files, oldClean)
	mfs.files[newClean] = file
	for p, f := range moved {
		mfs.files[p] = f
	}
	return nil
}

func (mfs *MockFileSystem) Chmod(path string, mode fs.FileMode) error {
	_, file, err := mfs.lookup("chmod", path)
	if err != nil {
		return err
	}
	file.Mode = file.Mode.Type() | mode.Perm()
	return nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	cleanPath, file, err := mfs.lookup("open", path)
	if err != nil {
		return nil, err
	}
	if file.Denied {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	if !file.IsDir {
		return nil, &fs.PathError{Op: "readdirent", Path: path, Err: unix.ENOTDIR}
	}

	var entries []fs.DirEntry
	for p, f := range mfs.files {
		if p == cleanPath || filepath.Dir(p) != cleanPath {
			continue
		}
		entries = append(entries, &mockDirEntry{info: mfs.info(p, f), noType: f.NoTypeHint})
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

func (mfs *MockFileSystem) Mkdir(path string, perm fs.FileMode) error {
	cleanPath, _, err := mfs.lookup("mkdir", path)
	if err == nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	parent, exists := mfs.files[filepath.Dir(cleanPath)]
	if !exists {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
	}
	if !parent.IsDir {
		return &fs.PathError{Op: "mkdir", Path: path, Err: unix.ENOTDIR}
	}
	mfs.files[cleanPath] = &MockFile{
		Mode:    perm.Perm() | fs.ModeDir,
		ModTime: time.Now(),
		IsDir:   true,
	}
	return nil
}

func (mfs *MockFileSystem) Rmdir(path string) error {
	cleanPath, file, err := mfs.lookup("rmdir", path)
	if err != nil {
		return err
	}
	if !file.IsDir {
		return &fs.PathError{Op: "rmdir", Path: path, Err: unix.ENOTDIR}
	}
	if mfs.hasChildren(cleanPath) {
		return &fs.PathError{Op: "rmdir", Path: path, Err: unix.ENOTEMPTY}
	}
	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	cleanPath, file, err := mfs.lookup("stat", path)
	if err != nil {
		return nil, err
	}
	return mfs.info(cleanPath, file), nil
}

func (mfs *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	cleanPath, file, err := mfs.lookup("lstat", path)
	if err != nil {
		return nil, err
	}
	return mfs.info(cleanPath, file), nil
}

func (mfs *MockFileSystem) EvalSymlinks(path string) (string, error) {
	cleanPath, _, err := mfs.lookup("lstat", path)
	if err != nil {
		return "", err
	}
	return cleanPath, nil
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	if mfs.currentDir == "" {
		return "", fmt.Errorf("getwd: %w", fs.ErrNotExist)
	}
	return mfs.currentDir, nil
}

func (mfs *MockFileSystem) ProbeEnter(path string) error {
	_, file, err := mfs.lookup("chdir", path)
	if err != nil {
		return err
	}
	if !file.IsDir {
		return &fs.PathError{Op: "chdir", Path: path, Err: unix.ENOTDIR}
	}
	if file.Denied {
		return &fs.PathError{Op: "chdir", Path: path, Err: fs.ErrPermission}
	}
	return nil
}

func (mfs *MockFileSystem) LookupUser(uid uint32) (string, bool) {
	name, ok := mfs.users[uid]
	return name, ok
}

func (mfs *MockFileSystem) LookupGroup(gid uint32) (string, bool) {
	name, ok := mfs.groups[gid]
	return name, ok
}
