package explorer

import "strings"

const separator = "/"

// joinPath concatenates dir and name with a single separator. It performs no
// cleaning: "a/../b" stays as given.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, separator) {
		return dir + name
	}
	return dir + separator + name
}

// parentPath truncates p at its last separator. The parent of the root, or of
// a path with no separator beyond the leading one, is the root.
func parentPath(p string) string {
	idx := strings.LastIndex(p, separator)
	if idx <= 0 {
		return separator
	}
	return p[:idx]
}

// resolvePath resolves an operation argument against dir. Absolute names are
// used verbatim, anything else is joined to dir.
func resolvePath(dir, name string) string {
	if strings.HasPrefix(name, separator) {
		return name
	}
	return joinPath(dir, name)
}
