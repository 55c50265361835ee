package filesystem

import (
	"io/fs"
	"time"
)

// Attributes are the POSIX metadata that fs.FileInfo does not expose portably.
type Attributes struct {
	UID        uint32
	GID        uint32
	AccessTime time.Time
	ChangeTime time.Time
}

// AttributesOf extracts ownership and timestamps from info. When the platform
// record is unavailable the times fall back to the modification time.
func AttributesOf(info fs.FileInfo) Attributes {
	switch sys := info.Sys().(type) {
	case *Attributes:
		return *sys
	case Attributes:
		return sys
	}

	if attrs, ok := platformAttributes(info); ok {
		return attrs
	}

	return Attributes{
		AccessTime: info.ModTime(),
		ChangeTime: info.ModTime(),
	}
}
