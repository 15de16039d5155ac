package launcher

import (
	"os"
	"path/filepath"
)

// ResolveScriptDir returns the absolute path of the directory containing the
// currently running executable, with any trailing path separator removed.
// Symlinks are resolved first so a launcher invoked through a symlink still
// finds the manifest next to the real binary.
func ResolveScriptDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", &PathResolutionError{Err: err}
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", &PathResolutionError{Path: exe, Err: err}
	}

	return NormalizeDir(filepath.Dir(resolved)), nil
}

// NormalizeDir strips trailing path separators from dir using the host
// separator. Filesystem roots are preserved.
func NormalizeDir(dir string) string {
	return trimTrailingSeparators(dir, filepath.Separator)
}

// trimTrailingSeparators removes trailing sep bytes from path without ever
// producing an empty string or stripping a root ("/", `C:\`).
func trimTrailingSeparators(path string, sep rune) string {
	for len(path) > 1 && path[len(path)-1] == byte(sep) {
		rest := path[:len(path)-1]
		if isRoot(rest) {
			return path
		}
		path = rest
	}
	return path
}

// isRoot reports whether trimming the separator after path would strip a
// filesystem root. Covers "" (the path was bare "/") and drive specs like "C:".
func isRoot(path string) bool {
	if path == "" {
		return true
	}
	return len(path) == 2 && path[1] == ':'
}
