package models

import (
	"fmt"
	"io/fs"
)

// ParsePermissions parses a 3-digit octal permission string such as "755".
// Any other length, or a digit outside 0-7, is rejected.
func ParsePermissions(s string) (fs.FileMode, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("invalid permission format %q (use 3 digits, e.g., 755)", s)
	}
	var mode fs.FileMode
	for _, c := range s {
		if c < '0' || c > '7' {
			return 0, fmt.Errorf("invalid permission digit %q in %q (must be 0-7)", c, s)
		}
		mode = mode<<3 | fs.FileMode(c-'0')
	}
	return mode, nil
}

// FormatPermissions renders the type marker and the 9 permission bits,
// e.g. "drwxr-xr-x".
func FormatPermissions(mode fs.FileMode) string {
	const rwx = "rwxrwxrwx"

	buf := make([]byte, 10)
	buf[0] = '-'
	if mode.IsDir() {
		buf[0] = 'd'
	} else if mode&fs.ModeSymlink != 0 {
		buf[0] = 'l'
	}
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf)
}

// OctalPermissions renders the permission bits in octal, e.g. "755".
func OctalPermissions(mode fs.FileMode) string {
	return fmt.Sprintf("%03o", uint32(mode.Perm()))
}
