//go:build darwin

package filesystem

import (
	"io/fs"
	"syscall"
	"time"
)

func platformAttributes(info fs.FileInfo) (Attributes, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Attributes{}, false
	}
	return Attributes{
		UID:        st.Uid,
		GID:        st.Gid,
		AccessTime: time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec),
		ChangeTime: time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec),
	}, true
}
