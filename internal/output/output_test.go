package output

import (
	"bytes"
	"context"
	"testing"
)

func TestWithPrinterFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), New(&buf, false, true))

	p := FromContext(ctx)
	p.Printf("value: %s\n", "test.target.online")

	if got := buf.String(); got != "value: test.target.online\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	p := FromContext(context.Background())
	if p == nil {
		t.Fatal("FromContext returned nil")
	}
	if p.Writer() == nil {
		t.Fatal("fallback printer has no writer")
	}
}

func TestNoColorStripsANSI(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, false, true)

	p.Print("\x1b[31mred\x1b[0m")
	if got := buf.String(); got != "red" {
		t.Errorf("output = %q, want ANSI stripped %q", got, "red")
	}
}
