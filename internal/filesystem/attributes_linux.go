//go:build linux

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
		AccessTime: time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)),
		ChangeTime: time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)),
	}, true
}
