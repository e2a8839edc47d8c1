// Package log provides context-aware logging for noita-saves.
//
// Diagnostics never go to stdout directly: the writer handed to [New] is
// normally the terminal's debug writer, so debug lines take part in the
// terminal's erase bookkeeping like every other line.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type ctxKey struct{}

// Logger provides diagnostic output and verbose debug logging.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a new logger. Debug output is only written when verbose is set.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// Debug logs a message with key/value pairs when verbose mode is enabled.
//
//	l.Debug("cache miss", "path", dir)  // cache miss path=/saves/a
func (l *Logger) Debug(msg string, kv ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintln(l.out, formatKV(msg, kv))
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func formatKV(msg string, kv []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(kv) {
			fmt.Fprintf(&b, "%v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, "%v=?", kv[i])
		}
	}
	return b.String()
}
