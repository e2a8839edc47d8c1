package term

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

var eraseOne = ansi.CursorUp(1) + ansi.EraseEntireLine

func newTestTerminal(interactive bool) (*Terminal, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf, WithInteractive(interactive)), &buf
}

func TestWrite_Lines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		blank bool
		want  int
	}{
		{"one", false, 1},
		{"", false, 1},
		{"a\nb\nc", false, 3},
		{"one", true, 2},
		{"a\nb", true, 3},
	}

	for _, tt := range tests {
		term, buf := newTestTerminal(true)
		var h Handle
		if tt.blank {
			h = term.WriteBlank(tt.text)
		} else {
			h = term.Write(tt.text)
		}
		if h.Lines() != tt.want {
			t.Errorf("Lines() for %q (blank=%v) = %d, want %d", tt.text, tt.blank, h.Lines(), tt.want)
		}
		if got := strings.Count(buf.String(), "\n"); got != tt.want {
			t.Errorf("newlines written for %q (blank=%v) = %d, want %d", tt.text, tt.blank, got, tt.want)
		}
	}
}

func TestWrite_NoEraseWithoutSchedule(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(true)
	term.Write("first")
	term.Write("second")

	if got, want := buf.String(), "first\nsecond\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestScheduleErase_ConsumedByNextWrite(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(true)
	term.Write("Loading...\nplease wait").ScheduleErase()

	if term.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", term.Pending())
	}
	if strings.Contains(buf.String(), eraseOne) {
		t.Fatal("ScheduleErase() must not erase immediately")
	}

	term.Write("listing")
	want := "Loading...\nplease wait\n" + eraseOne + eraseOne + "listing\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if term.Pending() != 0 {
		t.Errorf("Pending() after write = %d, want 0", term.Pending())
	}

	// The erase is consumed exactly once.
	term.Write("tail")
	if got := strings.Count(buf.String(), eraseOne); got != 2 {
		t.Errorf("erase sequences = %d, want 2", got)
	}
}

func TestScheduleErase_LastSchedulerWins(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(true)
	a := term.Write("a1\na2\na3")
	b := term.Write("b")
	a.ScheduleErase()
	b.ScheduleErase()

	if term.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", term.Pending())
	}

	buf.Reset()
	term.Write("next")
	if got, want := buf.String(), eraseOne+"next\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestScheduleErase_BlankLineCounted(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(true)
	term.WriteBlank("frame").ScheduleErase()
	buf.Reset()
	term.Write("x")

	if got := strings.Count(buf.String(), eraseOne); got != 2 {
		t.Errorf("erase sequences = %d, want 2", got)
	}
}

func TestFlush(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(true)
	term.Write("transient").ScheduleErase()
	buf.Reset()

	term.Flush()
	if got := buf.String(); got != eraseOne {
		t.Errorf("Flush() output = %q, want %q", got, eraseOne)
	}

	buf.Reset()
	term.Flush()
	if buf.Len() != 0 {
		t.Errorf("second Flush() wrote %q", buf.String())
	}
}

func TestNonInteractive_ConsumesWithoutEscapes(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(false)
	term.Write("Loading...").ScheduleErase()
	term.Write("listing")

	if got, want := buf.String(), "Loading...\nlisting\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if term.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", term.Pending())
	}
}

func TestNew_DetectsNonTerminal(t *testing.T) {
	t.Parallel()

	if New(&bytes.Buffer{}).Interactive() {
		t.Error("bytes.Buffer should not be detected as a terminal")
	}
}

func TestHighlight_BordersEveryLine(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(false)
	h := term.Error("disk full\nretry later")

	lines := strings.Split(strings.TrimSuffix(ansi.Strip(buf.String()), "\n"), "\n")
	want := []string{"┃ Error:", "┃ disk full", "┃ retry later", ""}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if h.Lines() != 4 {
		t.Errorf("Lines() = %d, want 4", h.Lines())
	}
}

func TestDebugWriter(t *testing.T) {
	t.Parallel()

	term, buf := newTestTerminal(false)
	n, err := term.DebugWriter().Write([]byte("redraws=7\n"))
	if err != nil || n != len("redraws=7\n") {
		t.Fatalf("Write() = %d, %v", n, err)
	}

	got := ansi.Strip(buf.String())
	if want := "┃ Debug:\n┃ redraws=7\n\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	term, _ := newTestTerminal(false)
	ctx := WithTerminal(context.Background(), term)
	if FromContext(ctx) != term {
		t.Error("FromContext() did not return stored terminal")
	}

	// Fallback discards output without panicking.
	FromContext(context.Background()).Write("dropped").ScheduleErase()
}
