package dirstat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/storage"
)

var (
	// ErrNoCache is returned when a sidecar is missing, unreadable or malformed.
	ErrNoCache = errors.New("no usable stat cache")
	// ErrNotExist is returned by Get when the directory itself is missing.
	ErrNotExist = errors.New("directory does not exist")
)

// CachePath returns the path of the sidecar for dir.
func CachePath(dir string) string {
	return filepath.Join(dir, FileName)
}

// ReadCache reads the sidecar of dir. Any failure (missing file, unreadable
// file, malformed content) is reported as an error wrapping ErrNoCache.
func ReadCache(dir string) (Stat, error) {
	var raw struct {
		Size  *uint64 `json:"size"`
		Count *uint64 `json:"count"`
	}
	if err := storage.LoadJSON(CachePath(dir), &raw); err != nil {
		return Stat{}, fmt.Errorf("%w: %w", ErrNoCache, err)
	}
	if raw.Size == nil || raw.Count == nil {
		return Stat{}, fmt.Errorf("%w: %s lacks size or count", ErrNoCache, CachePath(dir))
	}
	return Stat{Size: *raw.Size, Count: *raw.Count}, nil
}

// WriteCache replaces the sidecar of dir with st.
func WriteCache(dir string, st Stat) error {
	return storage.SaveJSON(CachePath(dir), st)
}

// Get returns the stat of dir.
//
// With useCache the sidecar is trusted when readable; otherwise the tree is
// scanned and the result is written back as the new sidecar (best effort,
// failures are only logged). Without useCache the tree is always scanned and
// nothing is written.
func Get(ctx context.Context, dir string, useCache bool) (Stat, error) {
	if !exists(dir) {
		return Stat{}, fmt.Errorf("%w: %s", ErrNotExist, dir)
	}
	if !useCache {
		return Scan(dir), nil
	}

	l := log.FromContext(ctx)

	st, err := ReadCache(dir)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		l.Debug("ignoring stat cache", "dir", dir, "err", err)
	}

	st = Scan(dir)
	if err := WriteCache(dir, st); err != nil {
		l.Debug("failed to write stat cache", "dir", dir, "err", err)
	}
	return st, nil
}
