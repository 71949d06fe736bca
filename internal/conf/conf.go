package conf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Key identifies one entry in a Table. Ident is empty for plain scalar
// entries (`key value`) and set for qualified ones (`key IDENT => value`).
type Key struct {
	Name  string
	Ident string
}

// String renders the key the way it appears in a settings file.
func (k Key) String() string {
	if k.Ident == "" {
		return k.Name
	}
	return k.Name + " " + k.Ident
}

// Table is an immutable mapping from keys to string values, preserving the
// order entries were defined in. Build one with Load or Parse, layer files
// with Merge.
type Table struct {
	values map[Key]string
	order  []Key
}

// keyPattern matches namespace-qualified keys like "target.torrc" or
// "msg.help". A key without a dot is how we tell a malformed line apart
// from a scalar assignment.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9_]+)+$`)

// identPattern matches target identifiers like "RUN_OPEN".
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Load reads and parses a settings file. The file handle is closed on all
// paths, including parse failure.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open settings file: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads the dialect from r, using name in error messages. Parsing
// fails on the first malformed line; settings files are small and
// developer-facing, so all-at-once error collection isn't worth the
// partial-state bookkeeping.
func Parse(r io.Reader, name string) (*Table, error) {
	t := &Table{values: make(map[Key]string)}

	// Line of first definition per key, for duplicate reporting.
	defined := make(map[Key]int)

	// The entry continuation lines append to, and whether it already
	// received its first continuation (distinguishes an empty value from
	// an empty first continuation line).
	var lastKey Key
	haveLast := false
	continued := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			// Accumulation ends at the first line not starting with "|",
			// blanks and comments included.
			haveLast = false
			continue
		}

		// Continuation: strip exactly one leading "|", keep the rest
		// verbatim.
		if strings.HasPrefix(line, "|") {
			if !haveLast {
				return nil, &ParseError{Source: name, Line: lineNo,
					Msg: "continuation line without a preceding entry"}
			}
			rest := line[1:]
			if !continued && t.values[lastKey] == "" {
				t.values[lastKey] = rest
			} else {
				t.values[lastKey] += "\n" + rest
			}
			continued = true
			continue
		}

		key, value, err := splitEntry(trimmed)
		if err != nil {
			return nil, &ParseError{Source: name, Line: lineNo, Msg: err.Error()}
		}

		if first, ok := defined[key]; ok {
			return nil, &DuplicateEntryError{Source: name, Key: key,
				FirstLine: first, Line: lineNo}
		}
		defined[key] = lineNo

		t.values[key] = value
		t.order = append(t.order, key)
		lastKey = key
		haveLast = true
		continued = false
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return t, nil
}

// splitEntry parses a single trimmed, non-blank, non-comment line into a
// key and value.
func splitEntry(line string) (Key, string, error) {
	keyStr := line
	rest := ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		keyStr = line[:i]
		rest = strings.TrimSpace(line[i+1:])
	}

	if !keyPattern.MatchString(keyStr) {
		return Key{}, "", fmt.Errorf("malformed line: %q is not a namespace-qualified key", keyStr)
	}

	// Qualified form: `namespace IDENT => value`. Extra spaces before the
	// arrow are column alignment and get trimmed away.
	if i := strings.Index(rest, "=>"); i >= 0 {
		ident := strings.TrimSpace(rest[:i])
		if ident == "" || !identPattern.MatchString(ident) {
			return Key{}, "", fmt.Errorf("malformed line: %q is not a valid identifier before \"=>\"", ident)
		}
		value := strings.TrimSpace(rest[i+2:])
		return Key{Name: keyStr, Ident: ident}, value, nil
	}

	// Plain scalar; an empty right-hand side is a valid empty value.
	return Key{Name: keyStr}, rest, nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Keys returns all keys in definition order.
func (t *Table) Keys() []Key {
	keys := make([]Key, len(t.order))
	copy(keys, t.order)
	return keys
}
