package styles

// Glyphs shared by the session output and the progress bar.
const (
	// Border prefixes every line of a highlighted block.
	Border = "┃"

	// Arrow separates a save's index from its description and ends prompts.
	Arrow = "❯"

	// BarFull and BarEmpty are the progress bar cells.
	BarFull  = '█'
	BarEmpty = '░'

	// CurrentMarker tags the save that matches the live save.
	CurrentMarker = "●"
)

// Bracket renders s inside dimmed square brackets, e.g. the shortcut
// letters of the action line: [S]ave.
func Bracket(s string) string {
	return MutedStyle.Render("[") + s + MutedStyle.Render("]")
}
