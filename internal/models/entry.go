package models

import (
	"io/fs"
	"time"
)

// EntryKind classifies a filesystem object
type EntryKind int

const (
	// KindUnknown means the enumeration call did not report a type
	KindUnknown EntryKind = iota
	KindFile
	KindDirectory
	KindSymlink
	KindOther
)

// String returns the display name of the kind
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectory:
		return "Directory"
	case KindSymlink:
		return "Symlink"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// KindFromMode derives the kind from mode type bits. fs.ModeIrregular is
// treated as "not reported" rather than as a real type.
func KindFromMode(mode fs.FileMode) EntryKind {
	switch {
	case mode&fs.ModeIrregular != 0:
		return KindUnknown
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// LazyKind holds the type hint from directory enumeration and falls back to
// an explicit metadata probe when the hint is missing. The probe runs at most
// once.
type LazyKind struct {
	hint     EntryKind
	probe    func() (fs.FileInfo, error)
	resolved bool
	err      error
}

// NewLazyKind creates a LazyKind from an enumeration hint
func NewLazyKind(hint fs.FileMode, probe func() (fs.FileInfo, error)) *LazyKind {
	return &LazyKind{hint: KindFromMode(hint), probe: probe}
}

// Resolve returns the entry kind, probing metadata if the hint was unknown.
// A failed probe yields KindUnknown and the probe error.
func (k *LazyKind) Resolve() (EntryKind, error) {
	if k.hint != KindUnknown || k.probe == nil {
		return k.hint, nil
	}
	if !k.resolved {
		k.resolved = true
		info, err := k.probe()
		if err != nil {
			k.err = err
		} else {
			k.hint = KindFromMode(info.Mode())
		}
	}
	return k.hint, k.err
}

// Entry is a metadata snapshot of one filesystem object. Entries are read
// live for every listing and never cached.
type Entry struct {
	// Name is the base name, without separators
	Name string `json:"name"`

	// Path is the absolute path
	Path string `json:"path"`

	Kind EntryKind   `json:"-"`
	Size int64       `json:"size"`
	Mode fs.FileMode `json:"-"`

	UID   uint32 `json:"uid"`
	GID   uint32 `json:"gid"`
	Owner string `json:"owner"`
	Group string `json:"group"`

	ModTime    time.Time `json:"modified"`
	AccessTime time.Time `json:"accessed"`
	ChangeTime time.Time `json:"changed"`

	// MIMEType is only detected for regular files in the info view
	MIMEType string `json:"mimeType,omitempty"`
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsExecutable reports whether the owner execute bit is set on a non-directory
func (e Entry) IsExecutable() bool {
	return !e.IsDir() && e.Mode&0o100 != 0
}
