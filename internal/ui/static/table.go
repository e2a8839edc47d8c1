// Package static provides non-interactive terminal output components.
//
// This package renders output that does not require user interaction, such
// as the save table of "noita-saves list".
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/kiria-f/noita-saves/internal/format"
	"github.com/kiria-f/noita-saves/internal/saves"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// SaveHeaders are the columns of the save table.
var SaveHeaders = []string{"#", "NAME", "SIZE", "FILES", "CREATED", ""}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
// The data row at index highlight (0-based, -1 for none) is drawn in the
// accent color.
func RenderTable(headers []string, rows [][]string, highlight int) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true)
			case row == highlight:
				return style.Foreground(styles.Accent)
			}
			return style
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// SaveTableRow converts a save at 1-based position pos into a table row.
func SaveTableRow(pos int, s saves.Save, current *saves.Save) []string {
	marker := ""
	if saves.IsCurrent(s, current) {
		marker = styles.CurrentMarker + " current"
	}
	return []string{
		strconv.Itoa(pos),
		s.Name,
		format.Size(s.Stat.Size),
		strconv.FormatUint(s.Stat.Count, 10),
		format.Date(s.Created),
		marker,
	}
}

// RenderSaves renders the save table, highlighting the first save that
// matches the live save.
func RenderSaves(list []saves.Save, current *saves.Save) string {
	rows := make([][]string, len(list))
	for i, s := range list {
		rows[i] = SaveTableRow(i+1, s, current)
	}
	return RenderTable(SaveHeaders, rows, saves.FindCurrent(list, current)-1)
}
