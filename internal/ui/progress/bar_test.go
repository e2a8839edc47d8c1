package progress

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/term"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestContext(interactive bool) (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	ctx := term.WithTerminal(context.Background(), term.New(&buf, term.WithInteractive(interactive)))
	return ctx, &buf
}

// frames returns the non-empty output lines with escape sequences removed.
func frames(buf *bytes.Buffer) []string {
	var out []string
	for _, line := range strings.Split(ansi.Strip(buf.String()), "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func TestNewBar_DrawsEmptyFrame(t *testing.T) {
	t.Parallel()

	ctx, buf := newTestContext(false)
	b := NewBar(ctx, 10, "Copying")

	if b.Visible() != 0 || b.Redraws() != 1 {
		t.Errorf("Visible() = %d, Redraws() = %d, want 0, 1", b.Visible(), b.Redraws())
	}
	got := frames(buf)
	want := "Copying: " + strings.Repeat("░", DefaultWidth)
	if len(got) != 1 || got[0] != want {
		t.Errorf("frames = %q, want [%q]", got, want)
	}
	if term.FromContext(ctx).Pending() != 1 {
		t.Error("empty frame should be scheduled for erase")
	}
}

func TestUpdate_FillLevels(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(false)
	b := NewBar(ctx, 10, "")

	prev := 0
	for k := 1; k <= 10; k++ {
		b.Update(k)
		if b.Visible() < prev {
			t.Fatalf("Update(%d): Visible() = %d decreased from %d", k, b.Visible(), prev)
		}
		if want := k * DefaultWidth / 10; b.Visible() != want {
			t.Errorf("Update(%d): Visible() = %d, want %d", k, b.Visible(), want)
		}
		if full := b.Visible() == DefaultWidth; full != (k == 10) {
			t.Errorf("Update(%d): full = %v", k, full)
		}
		prev = b.Visible()
	}
	if !b.Done() {
		t.Error("Done() = false after reaching target")
	}
}

func TestUpdate_NeverDecreases(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(false)
	b := NewBar(ctx, 10, "")

	b.Update(5)
	redraws := b.Redraws()
	b.Update(2)
	b.Update(5)

	if b.Visible() != 10 {
		t.Errorf("Visible() = %d, want 10", b.Visible())
	}
	if b.Redraws() != redraws {
		t.Errorf("Redraws() = %d, want %d (no redraw for lower or equal fill)", b.Redraws(), redraws)
	}
}

func TestUpdate_SkipsSameFill(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(false)
	b := NewBar(ctx, 100, "")

	// 100 units over 20 cells: 5 units per cell.
	for k := 1; k <= 4; k++ {
		b.Update(k)
	}
	if b.Redraws() != 1 {
		t.Errorf("Redraws() = %d, want 1", b.Redraws())
	}
	b.Update(5)
	if b.Redraws() != 2 || b.Visible() != 1 {
		t.Errorf("Redraws() = %d, Visible() = %d, want 2, 1", b.Redraws(), b.Visible())
	}
}

func TestUpdate_Throttle(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(false)
	clock := &fakeClock{t: time.Unix(0, 0)}
	b := NewBar(ctx, 20, "", WithMinInterval(100*time.Millisecond), WithClock(clock.now))

	clock.advance(50 * time.Millisecond)
	b.Update(5)
	if b.Visible() != 0 {
		t.Errorf("Visible() = %d, want 0 before the interval elapsed", b.Visible())
	}

	clock.advance(50 * time.Millisecond)
	b.Update(6)
	if b.Visible() != 6 {
		t.Errorf("Visible() = %d, want 6 once the interval elapsed", b.Visible())
	}

	clock.advance(10 * time.Millisecond)
	b.Update(20)
	if b.Done() {
		t.Error("full frame should be throttled too")
	}

	b.Finish()
	if !b.Done() || b.Visible() != DefaultWidth {
		t.Errorf("after Finish(): Done() = %v, Visible() = %d", b.Done(), b.Visible())
	}
}

func TestFinish_WritesDoneOnce(t *testing.T) {
	t.Parallel()

	ctx, buf := newTestContext(false)
	b := NewBar(ctx, 3, "Deleting")
	b.Update(3)
	b.Finish()
	b.Update(3)

	got := frames(buf)
	if n := strings.Count(strings.Join(got, "\n"), "Deleting: Done!"); n != 1 {
		t.Errorf("Done lines = %d, want 1 in %q", n, got)
	}
	if got[len(got)-1] != "Deleting: Done!" {
		t.Errorf("last frame = %q, want Done line", got[len(got)-1])
	}
	if term.FromContext(ctx).Pending() != 0 {
		t.Error("Done line must not be scheduled for erase")
	}
}

func TestDone_ReplacesLastFrame(t *testing.T) {
	t.Parallel()

	ctx, buf := newTestContext(true)
	b := NewBar(ctx, 1, "")
	b.Update(1)

	erase := ansi.CursorUp(1) + ansi.EraseEntireLine
	if strings.Count(buf.String(), erase) != 1 {
		t.Errorf("expected the empty frame to be erased once, got %q", buf.String())
	}
	if !strings.HasSuffix(ansi.Strip(buf.String()), "Done!\n\n") {
		t.Errorf("output should end with Done line and blank line, got %q", buf.String())
	}
}

func TestNewBar_ZeroTarget(t *testing.T) {
	t.Parallel()

	ctx, buf := newTestContext(false)
	b := NewBar(ctx, 0, "Copying")

	if !b.Done() || b.Redraws() != 1 {
		t.Errorf("Done() = %v, Redraws() = %d, want true, 1", b.Done(), b.Redraws())
	}
	if got := frames(buf); len(got) != 1 || got[0] != "Copying: Done!" {
		t.Errorf("frames = %q", got)
	}
	b.Update(1)
	b.Finish()
	if b.Redraws() != 1 {
		t.Errorf("Redraws() = %d after completion, want 1", b.Redraws())
	}
}

func TestDone_LogsRedraws(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(false)
	var logs bytes.Buffer
	ctx = log.WithLogger(ctx, log.New(&logs, true))

	b := NewBar(ctx, 2, "Copying")
	b.Update(1)
	b.Update(2)

	if !strings.Contains(logs.String(), "redraws=3") {
		t.Errorf("debug log = %q, want redraws=3", logs.String())
	}
}

func TestIntervalForFramerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fps  int
		want time.Duration
	}{
		{30, time.Second / 30},
		{1, time.Second},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := IntervalForFramerate(tt.fps); got != tt.want {
			t.Errorf("IntervalForFramerate(%d) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}
