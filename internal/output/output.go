// Package output provides context-aware output for tortest.
// Stdout is used for primary data output (tables, values, JSON), filtered
// through a color profile so styled output degrades cleanly when piped or
// when color is disabled. Stderr (via the log package) is used for
// diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout through a color profile writer.
type Printer struct {
	w       io.Writer
	profile colorprofile.Profile
}

// New creates a Printer for w. With color forced off the profile strips
// ANSI sequences entirely; with color forced on it assumes a capable
// terminal; otherwise the profile is detected from the writer and
// environment (pipes, NO_COLOR and friends).
func New(w io.Writer, forceColor, noColor bool) *Printer {
	var profile colorprofile.Profile
	switch {
	case noColor:
		profile = colorprofile.Ascii
	case forceColor:
		profile = colorprofile.TrueColor
	default:
		profile = colorprofile.Detect(w, os.Environ())
	}

	cw := &colorprofile.Writer{Forward: w, Profile: profile}
	return &Printer{w: cw, profile: profile}
}

// Profile returns the active color profile.
func (p *Printer) Profile() colorprofile.Profile {
	return p.profile
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a color-stripping Printer on os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, false, true)
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the color-filtering writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
