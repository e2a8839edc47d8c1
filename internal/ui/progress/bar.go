// Package progress renders a bounded counter as a fixed-width bar through
// the session terminal.
package progress

import (
	"context"
	"time"

	"charm.land/bubbles/v2/progress"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/term"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// DefaultWidth is the number of cells in the bar.
const DefaultWidth = 20

// Bar is a progress bar that redraws in place. Frames that are not full are
// written as transient lines, so the next frame (or whatever is written
// next) replaces them. The full frame is replaced by a "<title>: Done!" line
// that stays in the scrollback.
type Bar struct {
	ctx   context.Context
	t     *term.Terminal
	title string
	model progress.Model

	target      int
	raw         int
	fill        int
	width       int
	minInterval time.Duration
	now         func() time.Time
	started     time.Time
	lastDraw    time.Time
	redraws     int
	done        bool
}

// Option configures a Bar.
type Option func(*Bar)

// WithWidth sets the number of cells.
func WithWidth(width int) Option {
	return func(b *Bar) {
		if width > 0 {
			b.width = width
		}
	}
}

// WithMinInterval sets the minimum time between two redraws.
// Zero redraws on every fill change.
func WithMinInterval(d time.Duration) Option {
	return func(b *Bar) {
		b.minInterval = d
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) {
		b.now = now
	}
}

// IntervalForFramerate converts a maximum redraw rate into a minimum
// interval. Zero or negative rates disable throttling.
func IntervalForFramerate(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// NewBar creates a bar for target units and draws the empty frame.
// A target of zero or less is already complete and draws the Done line.
// The terminal and the debug logger are taken from ctx.
func NewBar(ctx context.Context, target int, title string, opts ...Option) *Bar {
	b := &Bar{
		ctx:    ctx,
		t:      term.FromContext(ctx),
		title:  title,
		target: target,
		width:  DefaultWidth,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.model = progress.New(
		progress.WithWidth(b.width),
		progress.WithoutPercentage(),
		progress.WithColors(styles.Primary, styles.Accent),
	)
	b.model.Full = styles.BarFull
	b.model.Empty = styles.BarEmpty

	b.started = b.now()
	b.lastDraw = b.started
	if target <= 0 {
		b.fill = b.width
	}
	b.draw()
	return b
}

// Update records raw progress and redraws if the visible fill grew and the
// minimum interval has passed since the last redraw. Fill never decreases.
func (b *Bar) Update(raw int) {
	if b.done {
		return
	}
	b.raw = raw

	fill := b.fillFor(raw)
	if fill <= b.fill {
		return
	}
	now := b.now()
	if b.minInterval > 0 && now.Sub(b.lastDraw) < b.minInterval {
		return
	}

	b.lastDraw = now
	b.fill = fill
	b.draw()
}

// Finish draws the Done line if it has not been drawn yet. Callers use it
// after the last unit, where throttling may have skipped the full frame.
func (b *Bar) Finish() {
	if b.done {
		return
	}
	b.fill = b.width
	b.draw()
}

// Visible returns the number of filled cells currently shown.
func (b *Bar) Visible() int {
	return b.fill
}

// Redraws returns how many frames have been drawn, the initial one included.
func (b *Bar) Redraws() int {
	return b.redraws
}

// Done reports whether the completed frame has been drawn.
func (b *Bar) Done() bool {
	return b.done
}

func (b *Bar) fillFor(raw int) int {
	if raw <= 0 {
		return 0
	}
	if raw >= b.target {
		return b.width
	}
	return raw * b.width / b.target
}

func (b *Bar) prefix() string {
	if b.title == "" {
		return ""
	}
	return b.title + ": "
}

func (b *Bar) draw() {
	b.redraws++

	if b.fill < b.width {
		frame := b.model.ViewAs(float64(b.fill) / float64(b.width))
		b.t.Write(b.prefix() + frame).ScheduleErase()
		return
	}

	b.done = true
	b.t.WriteBlank(b.prefix() + styles.SuccessStyle.Render("Done!"))
	log.FromContext(b.ctx).Debug("progress done",
		"title", b.title,
		"redraws", b.redraws,
		"elapsed", b.now().Sub(b.started).Round(time.Millisecond),
	)
}
