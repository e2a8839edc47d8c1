package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryPaths represents missing configured directories.
	CategoryPaths IssueCategory = "paths"
	// CategorySidecar represents missing, unreadable or stale sidecars.
	CategorySidecar IssueCategory = "sidecar"
	// CategoryStore represents unexpected entries in the store or live save.
	CategoryStore IssueCategory = "store"
)

// FixAction is what --fix does about an issue.
type FixAction string

const (
	FixNone          FixAction = ""               // reported only
	FixCreateDir     FixAction = "create_dir"     // create the save store
	FixWriteSidecar  FixAction = "write_sidecar"  // rescan and replace the sidecar
	FixRemoveSidecar FixAction = "remove_sidecar" // delete a sidecar that must not exist
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // save name or path
	Path        string        // directory the fix applies to
	Description string        // human-readable description
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
}

// Report is the result of a check.
type Report struct {
	Issues    []Issue
	SavesOK   int // saves whose sidecar matches a fresh scan
	SavesSeen int // save directories checked
}
