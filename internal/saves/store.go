package saves

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kiria-f/noita-saves/internal/dirstat"
	"github.com/kiria-f/noita-saves/internal/log"
)

// Save is one save directory and its stat.
type Save struct {
	Path    string       `json:"path"`
	Name    string       `json:"name"` // empty for the current save
	Created time.Time    `json:"created"`
	Stat    dirstat.Stat `json:"stat"`
}

// Store locates the named saves and the live save.
type Store struct {
	Dir         string // one subdirectory per named save
	CurrentPath string // the game's live save directory
}

// NewStore creates a Store.
func NewStore(dir, currentPath string) *Store {
	return &Store{Dir: dir, CurrentPath: currentPath}
}

// Ensure creates the store directory if it does not exist.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create saves directory: %w", err)
	}
	return nil
}

// Path returns the directory a save called name lives in.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// NewSavePath validates name and returns the directory for a new save.
// Returns ErrExists if a save with that name is already present.
func (s *Store) NewSavePath(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	path := s.Path(name)
	if _, err := os.Lstat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	return path, nil
}

// List returns the saves in the store ordered by creation time (ties by
// name). A store directory that does not exist yet holds no saves. It fails
// only when the store directory cannot be read; entries that are not
// directories (or links to one) or cannot be stat'ed are left out.
func (s *Store) List(ctx context.Context) ([]Save, error) {
	l := log.FromContext(ctx)

	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		l.Debug("no saves directory yet", "path", s.Dir)
		return []Save{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read saves directory: %w", err)
	}

	list := make([]Save, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		path := filepath.Join(s.Dir, entry.Name())
		save, err := load(ctx, path, entry.Name(), true)
		if err != nil {
			l.Debug("skipping save", "path", path, "err", err)
			continue
		}
		list = append(list, save)
	}

	slices.SortStableFunc(list, func(a, b Save) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return list, nil
}

// Current returns the live save, or false if its directory does not exist.
func (s *Store) Current(ctx context.Context) (*Save, bool) {
	save, err := load(ctx, s.CurrentPath, "", false)
	if err != nil {
		log.FromContext(ctx).Debug("no current save", "path", s.CurrentPath, "err", err)
		return nil, false
	}
	return &save, true
}

// Rescan recomputes the stat of every save and overwrites its sidecar.
// Returns the updated saves; sidecar write failures are joined into err.
func Rescan(ctx context.Context, list []Save) ([]Save, error) {
	out := slices.Clone(list)
	var errs []error
	for i := range out {
		out[i].Stat = dirstat.Scan(out[i].Path)
		if err := dirstat.WriteCache(out[i].Path, out[i].Stat); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", out[i].Name, err))
		}
	}
	log.FromContext(ctx).Debug("rescanned", "saves", len(out), "failed", len(errs))
	return out, errors.Join(errs...)
}

func load(ctx context.Context, path, name string, useCache bool) (Save, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Save{}, err
	}
	if !info.IsDir() {
		return Save{}, fmt.Errorf("not a directory: %s", path)
	}
	st, err := dirstat.Get(ctx, path, useCache)
	if err != nil {
		return Save{}, err
	}
	return Save{
		Path:    path,
		Name:    name,
		Created: created(path, info),
		Stat:    st,
	}, nil
}
