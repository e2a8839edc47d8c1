package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kiria-f/noita-saves/internal/dirstat"
	"github.com/kiria-f/noita-saves/internal/format"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/saves"
)

// Check inspects the store without changing anything.
func Check(ctx context.Context, store *saves.Store) Report {
	var r Report
	r.Issues = append(r.Issues, checkPaths(store)...)

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		log.FromContext(ctx).Debug("skip store checks", "err", err)
		return r
	}

	for _, entry := range entries {
		path := store.Path(entry.Name())
		if !entry.IsDir() {
			r.Issues = append(r.Issues, Issue{
				Key:         entry.Name(),
				Path:        path,
				Description: "not a save directory, ignored by listings",
				Category:    CategoryStore,
			})
			continue
		}

		r.SavesSeen++
		if issue, ok := checkSidecar(entry.Name(), path); ok {
			r.Issues = append(r.Issues, issue)
			continue
		}
		r.SavesOK++
	}
	return r
}

func checkPaths(store *saves.Store) []Issue {
	var issues []Issue

	if !isDir(store.Dir) {
		issues = append(issues, Issue{
			Key:         "saves_dir",
			Path:        store.Dir,
			Description: "save store does not exist",
			FixAction:   FixCreateDir,
			Category:    CategoryPaths,
		})
	}

	if !isDir(store.CurrentPath) {
		issues = append(issues, Issue{
			Key:         "current_save",
			Path:        store.CurrentPath,
			Description: "live save does not exist (start the game once or fix current_save)",
			Category:    CategoryPaths,
		})
	} else if _, err := os.Stat(dirstat.CachePath(store.CurrentPath)); err == nil {
		issues = append(issues, Issue{
			Key:         "current_save",
			Path:        store.CurrentPath,
			Description: "live save contains a stat sidecar",
			FixAction:   FixRemoveSidecar,
			Category:    CategoryStore,
		})
	}

	return issues
}

// checkSidecar returns an issue if the sidecar of the save at path is
// missing, unreadable or disagrees with a fresh scan.
func checkSidecar(name, path string) (Issue, bool) {
	issue := Issue{
		Key:       name,
		Path:      path,
		FixAction: FixWriteSidecar,
		Category:  CategorySidecar,
	}

	cached, err := dirstat.ReadCache(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			issue.Description = "stat sidecar missing"
		} else {
			issue.Description = fmt.Sprintf("stat sidecar unreadable: %v", err)
		}
		return issue, true
	}

	actual := dirstat.Scan(path)
	if actual == cached {
		return Issue{}, false
	}
	issue.Description = fmt.Sprintf("stat sidecar stale: cached %s in %s, actual %s in %s",
		format.Size(cached.Size), format.Count(cached.Count),
		format.Size(actual.Size), format.Count(actual.Count))
	return issue, true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
