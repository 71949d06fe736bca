package conf

import (
	"fmt"
	"io"
	"strings"
)

// Encode writes the table back out in the settings dialect, in definition
// order. Parsing the output yields a table equal to this one. Multi-line
// values are emitted as a bare key followed by |-prefixed continuations.
func (t *Table) Encode(w io.Writer) error {
	for _, key := range t.order {
		if _, err := io.WriteString(w, t.encodeEntry(key)); err != nil {
			return fmt.Errorf("encode %q: %w", key, err)
		}
	}
	return nil
}

// String renders the table in the settings dialect.
func (t *Table) String() string {
	var sb strings.Builder
	for _, key := range t.order {
		sb.WriteString(t.encodeEntry(key))
	}
	return sb.String()
}

func (t *Table) encodeEntry(key Key) string {
	value := t.values[key]

	head := key.Name
	if key.Ident != "" {
		head += " " + key.Ident + " =>"
	}

	if strings.Contains(value, "\n") {
		var sb strings.Builder
		sb.WriteString(head)
		sb.WriteString("\n")
		for _, line := range strings.Split(value, "\n") {
			sb.WriteString("|")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		return sb.String()
	}

	if value == "" {
		return head + "\n"
	}
	return head + " " + value + "\n"
}
