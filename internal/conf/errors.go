package conf

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) by lookups for keys that were never
// defined. Callers that can live with a missing key should use the
// *Default accessors instead of matching on this.
var ErrNotFound = errors.New("config key not found")

// ParseError describes a malformed line in a config source.
// Parsing stops at the first malformed line; no partial table is returned.
type ParseError struct {
	Source string // file path or reader name
	Line   int    // 1-based
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

// DuplicateEntryError reports the same (key, identifier) assigned twice
// within a single source. Overriding a value is done by layering a second
// file via Merge, not by repeating the entry.
type DuplicateEntryError struct {
	Source    string
	Key       Key
	FirstLine int
	Line      int
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("%s:%d: duplicate entry %q (first defined on line %d)",
		e.Source, e.Line, e.Key, e.FirstLine)
}
