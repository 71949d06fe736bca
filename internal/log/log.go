// Package log provides context-aware diagnostic logging for tortest.
// Diagnostics go to stderr; primary data output goes through the output
// package instead.
package log

import (
	"context"
	"fmt"
	"io"
)

type ctxKey struct{}

// Logger writes warnings and verbose diagnostics.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger. With quiet set, warnings are suppressed; with
// verbose set, Debug lines are emitted too.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
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

// Warnf writes a warning line. Suppressed in quiet mode.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "Warning: "+format+"\n", args...)
}

// Debug writes a diagnostic line with key-value pairs.
// Only prints when verbose mode is enabled.
func (l *Logger) Debug(msg string, kv ...any) {
	if !l.verbose || l.quiet {
		return
	}
	fmt.Fprint(l.out, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(l.out, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(l.out)
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
