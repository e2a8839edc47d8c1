// Package output carries the stdout printer of one-shot subcommands.
//
// Subcommands print their data here (tables, paths, JSON) and their result
// line through Done. Progress and prompts go elsewhere: the interactive
// session draws through package term, subcommands draw progress on stderr.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// DoneMark prefixes result lines.
const DoneMark = "✓"

type ctxKey struct{}

// Printer writes subcommand output.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer for w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext returns the context's Printer, or one writing to os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Done prints the one-line result of a subcommand, marked as a success.
func (p *Printer) Done(format string, a ...any) {
	fmt.Fprintln(p.w, styles.SuccessStyle.Render(DoneMark), fmt.Sprintf(format, a...))
}

// JSON writes v as indented JSON followed by a newline.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) Writer() io.Writer {
	return p.w
}
