package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/kiria-f/noita-saves/internal/saves"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// DateLayout is the layout of save dates.
const DateLayout = "2006-01-02 15:04"

const sep = " · "

// SaveLine describes a save on one line:
//
//	Before boss · 12.3 MiB · 312 files · 2026-01-02 15:04 ● current
//
// The marker is added when the save matches the live save.
func SaveLine(s saves.Save, current *saves.Save) string {
	parts := []string{
		s.Name,
		styles.MutedStyle.Render(Size(s.Stat.Size)),
		styles.MutedStyle.Render(Count(s.Stat.Count)),
		styles.MutedStyle.Render(Date(s.Created)),
	}
	line := strings.Join(parts, styles.MutedStyle.Render(sep))
	if saves.IsCurrent(s, current) {
		line += " " + styles.AccentStyle.Render(styles.CurrentMarker+" current")
	}
	return line
}

// IndexedLine prefixes SaveLine with the save's 1-based position, padded so
// that the arrows of a list of total saves line up.
func IndexedLine(pos, total int, s saves.Save, current *saves.Save) string {
	width := len(fmt.Sprint(total))
	return fmt.Sprintf("%*d %s %s", width, pos, styles.Arrow, SaveLine(s, current))
}

// Date formats t in the local time zone.
func Date(t time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	return t.Local().Format(DateLayout)
}
