package dirstat

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the reserved name of the stat sidecar. Files with this name are
// excluded from scans and transfers at any depth.
const FileName = ".noita_saves_cache.json"

// Stat is the aggregate size and file count of a directory tree.
type Stat struct {
	Size  uint64 `json:"size"`
	Count uint64 `json:"count"`
}

// IsSidecar reports whether name is the reserved sidecar file name.
func IsSidecar(name string) bool {
	return name == FileName
}

// Root resolves symlinks in path so a linked save directory is walked
// through its target. Links below the root are never followed.
func Root(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// walkRoot is Root, falling back to path so the walk reports nothing.
func walkRoot(path string) string {
	if root, err := Root(path); err == nil {
		return root
	}
	return path
}

// Scan walks the full tree under path, summing the sizes of regular files and
// counting them. The sidecar is excluded. Unreadable entries are skipped, so
// the result is a best-effort partial total when parts of the tree fail.
func Scan(path string) Stat {
	var st Stat
	_ = filepath.WalkDir(walkRoot(path), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() || IsSidecar(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		st.Size += uint64(info.Size())
		st.Count++
		return nil
	})
	return st
}

// CountDirs returns the number of directories in the tree under path,
// including path itself. Unreadable entries are skipped.
func CountDirs(path string) uint64 {
	var n uint64
	_ = filepath.WalkDir(walkRoot(path), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			n++
		}
		return nil
	})
	return n
}

// exists reports whether path can be stat'ed.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
