package saves

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kiria-f/noita-saves/internal/dirstat"
)

func makeSave(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()
	return NewStore(filepath.Join(root, "saves"), filepath.Join(root, "game", "save00"))
}

func TestList_OrderedByCreation(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"zeta", "alpha", "mid"} {
		dir := s.Path(name)
		makeSave(t, dir, map[string]string{"player.xml": name})
		// Both birth time (creation order) and mtime agree on the order.
		ts := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(dir, ts, ts); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	makeSave(t, s.Dir, map[string]string{"notes.txt": "not a save"})

	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, saveNames(list)); diff != "" {
		t.Errorf("List() order mismatch (-want +got):\n%s", diff)
	}
}

func TestList_UsesAndWritesSidecars(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	makeSave(t, s.Path("fresh"), map[string]string{"a": "12345", "b/c": "67"})
	makeSave(t, s.Path("cached"), map[string]string{"a": "1"})
	fake := dirstat.Stat{Size: 999, Count: 42}
	if err := dirstat.WriteCache(s.Path("cached"), fake); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	byName := map[string]dirstat.Stat{}
	for _, save := range list {
		byName[save.Name] = save.Stat
	}
	if got := byName["cached"]; got != fake {
		t.Errorf("cached stat = %+v, want sidecar value %+v", got, fake)
	}
	if got, want := byName["fresh"], (dirstat.Stat{Size: 7, Count: 2}); got != want {
		t.Errorf("fresh stat = %+v, want %+v", got, want)
	}
	if _, err := dirstat.ReadCache(s.Path("fresh")); err != nil {
		t.Errorf("List() should write a sidecar on miss: %v", err)
	}
}

func TestList_MissingStore(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	list, err := s.List(context.Background())
	if err != nil || list == nil || len(list) != 0 {
		t.Errorf("List() on missing store = %v, %v, want empty list", list, err)
	}
	if _, err := os.Stat(s.Dir); !os.IsNotExist(err) {
		t.Errorf("List() should not create the store: %v", err)
	}
	if err := s.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	list, err = s.List(context.Background())
	if err != nil || len(list) != 0 {
		t.Errorf("List() = %v, %v, want empty list", list, err)
	}
}

func TestList_UnreadableStore(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := os.WriteFile(s.Dir, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.List(context.Background()); err == nil {
		t.Error("List() on a file should fail")
	}
}

func TestList_SymlinkedSave(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Ensure(); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(t.TempDir(), "elsewhere")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "player.xml"), []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(s.Dir, "Linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].Name != "Linked" || list[0].Stat != (dirstat.Stat{Size: 3, Count: 1}) {
		t.Errorf("List() = %+v, want the linked save with its target's stat", list)
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, ok := s.Current(context.Background()); ok {
		t.Fatal("Current() ok = true for missing live save")
	}

	makeSave(t, s.CurrentPath, map[string]string{"player.xml": "abc"})
	// A sidecar in the live save is never trusted.
	if err := dirstat.WriteCache(s.CurrentPath, dirstat.Stat{Size: 1, Count: 1}); err != nil {
		t.Fatal(err)
	}

	cur, ok := s.Current(context.Background())
	if !ok {
		t.Fatal("Current() ok = false")
	}
	if cur.Name != "" {
		t.Errorf("Current().Name = %q, want empty", cur.Name)
	}
	if want := (dirstat.Stat{Size: 3, Count: 1}); cur.Stat != want {
		t.Errorf("Current().Stat = %+v, want %+v", cur.Stat, want)
	}
}

func TestNewSavePath(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	makeSave(t, s.Path("taken"), map[string]string{"a": "1"})

	if _, err := s.NewSavePath("taken"); !errors.Is(err, ErrExists) {
		t.Errorf("NewSavePath(taken) error = %v, want ErrExists", err)
	}
	if _, err := s.NewSavePath("bad/name"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("NewSavePath(bad/name) error = %v, want ErrInvalidName", err)
	}
	got, err := s.NewSavePath("new one")
	if err != nil {
		t.Fatalf("NewSavePath() error = %v", err)
	}
	if want := filepath.Join(s.Dir, "new one"); got != want {
		t.Errorf("NewSavePath() = %q, want %q", got, want)
	}
}

func TestRescan(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	makeSave(t, s.Path("a"), map[string]string{"x": "1234"})
	if err := dirstat.WriteCache(s.Path("a"), dirstat.Stat{Size: 1, Count: 9}); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	fixed, err := Rescan(context.Background(), list)
	if err != nil {
		t.Fatalf("Rescan() error = %v", err)
	}

	want := dirstat.Stat{Size: 4, Count: 1}
	if fixed[0].Stat != want {
		t.Errorf("Rescan() stat = %+v, want %+v", fixed[0].Stat, want)
	}
	if list[0].Stat == want {
		t.Error("Rescan() modified its input")
	}
	if cached, _ := dirstat.ReadCache(s.Path("a")); cached != want {
		t.Errorf("sidecar = %+v, want %+v", cached, want)
	}
}
