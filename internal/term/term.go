package term

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

// Terminal is a single-writer line renderer that can erase what it wrote last.
type Terminal struct {
	mu          sync.Mutex
	w           io.Writer
	interactive bool
	pending     int // lines to erase before the next write
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithInteractive overrides terminal detection.
func WithInteractive(interactive bool) Option {
	return func(t *Terminal) {
		t.interactive = interactive
	}
}

// New creates a Terminal writing to w.
// Interactivity defaults to whether w is a terminal.
func New(w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{w: w, interactive: isTerminal(w)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive reports whether erase sequences are emitted.
func (t *Terminal) Interactive() bool {
	return t.interactive
}

// Handle describes one completed write.
type Handle struct {
	t     *Terminal
	lines int
}

// Lines returns how many terminal lines the write spanned.
func (h Handle) Lines() int {
	return h.lines
}

// ScheduleErase marks the write as transient: the next write on the terminal
// erases it first. A later ScheduleErase replaces an unconsumed one.
func (h Handle) ScheduleErase() {
	if h.t == nil {
		return
	}
	h.t.mu.Lock()
	h.t.pending = h.lines
	h.t.mu.Unlock()
}

// Write erases any pending lines, then prints text followed by a newline.
func (t *Terminal) Write(text string) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.eraseLocked()
	fmt.Fprint(t.w, text+"\n")
	return Handle{t: t, lines: countLines(text)}
}

// WriteBlank is Write followed by one empty line, which is counted in the
// returned handle.
func (t *Terminal) WriteBlank(text string) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.eraseLocked()
	fmt.Fprint(t.w, text+"\n\n")
	return Handle{t: t, lines: countLines(text) + 1}
}

// Blank prints an empty line.
func (t *Terminal) Blank() Handle {
	return t.Write("")
}

// Flush performs a pending erase without writing anything. Used before
// another component (the line editor) takes over the cursor.
func (t *Terminal) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseLocked()
}

// Pending returns the number of lines the next write will erase.
func (t *Terminal) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

func (t *Terminal) eraseLocked() {
	n := t.pending
	t.pending = 0
	if n == 0 || !t.interactive {
		return
	}
	seq := ansi.CursorUp(1) + ansi.EraseEntireLine
	fmt.Fprint(t.w, strings.Repeat(seq, n))
}

func countLines(text string) int {
	return strings.Count(text, "\n") + 1
}

type ctxKey struct{}

// WithTerminal returns a new context carrying t.
func WithTerminal(ctx context.Context, t *Terminal) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the Terminal stored in ctx.
// Returns a Terminal that discards everything if none is stored.
func FromContext(ctx context.Context) *Terminal {
	if t, ok := ctx.Value(ctxKey{}).(*Terminal); ok {
		return t
	}
	return New(io.Discard, WithInteractive(false))
}
