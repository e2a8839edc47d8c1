package doctor

import (
	"fmt"
	"os"

	"github.com/kiria-f/noita-saves/internal/dirstat"
	"github.com/kiria-f/noita-saves/internal/output"
)

// fixAllIssues applies fixes for all fixable issues and returns how many
// fixes succeeded and failed.
func fixAllIssues(out *output.Printer, issues []Issue) (fixed, failed int) {
	for _, issue := range issues {
		var err error
		switch issue.FixAction {
		case FixNone:
			continue
		case FixCreateDir:
			err = os.MkdirAll(issue.Path, 0o755)
		case FixWriteSidecar:
			err = dirstat.WriteCache(issue.Path, dirstat.Scan(issue.Path))
		case FixRemoveSidecar:
			err = os.Remove(dirstat.CachePath(issue.Path))
		default:
			err = fmt.Errorf("unknown fix action %q", issue.FixAction)
		}

		if err != nil {
			out.Printf("  ✗ %s: %v\n", issue.Key, err)
			failed++
			continue
		}
		out.Printf("  ✓ %s: %s\n", issue.Key, fixDescription(issue.FixAction))
		fixed++
	}
	return fixed, failed
}

func fixDescription(a FixAction) string {
	switch a {
	case FixCreateDir:
		return "created directory"
	case FixWriteSidecar:
		return "rewrote stat sidecar"
	case FixRemoveSidecar:
		return "removed stat sidecar"
	}
	return string(a)
}
