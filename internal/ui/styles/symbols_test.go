package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestBracket(t *testing.T) {
	t.Parallel()

	if got := ansi.Strip(Bracket("S")); got != "[S]" {
		t.Errorf("Bracket(S) = %q, want %q", got, "[S]")
	}
}
