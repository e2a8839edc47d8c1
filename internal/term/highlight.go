package term

import (
	"image/color"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// Highlight prints text with a colored border glyph in front of every line,
// followed by a blank line.
func (t *Terminal) Highlight(c color.Color, text string) Handle {
	border := lipgloss.NewStyle().Foreground(c).Render(styles.Border) + " "
	return t.WriteBlank(border + strings.ReplaceAll(text, "\n", "\n"+border))
}

// Error prints a highlighted error block.
func (t *Terminal) Error(text string) Handle {
	return t.Highlight(styles.Error, styles.ErrorStyle.Render("Error:")+"\n"+text)
}

// Warn prints a highlighted warning block.
func (t *Terminal) Warn(text string) Handle {
	return t.Highlight(styles.Warning, styles.WarningStyle.Render("Warning:")+"\n"+text)
}

// Debug prints a highlighted debug block. Callers decide whether debug output
// is enabled; see DebugWriter.
func (t *Terminal) Debug(text string) Handle {
	return t.Highlight(styles.Info, styles.InfoStyle.Render("Debug:")+"\n"+text)
}

// DebugWriter adapts the terminal for use as a logger's output. Each Write
// becomes one debug block.
func (t *Terminal) DebugWriter() io.Writer {
	return debugWriter{t}
}

type debugWriter struct {
	t *Terminal
}

func (d debugWriter) Write(p []byte) (int, error) {
	d.t.Debug(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
