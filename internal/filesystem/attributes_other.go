//go:build !linux && !darwin

package filesystem

import "io/fs"

func platformAttributes(info fs.FileInfo) (Attributes, bool) {
	return Attributes{}, false
}
