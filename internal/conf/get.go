package conf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Get returns the value of a plain scalar key.
// Returns an error wrapping ErrNotFound if the key was never defined.
func (t *Table) Get(name string) (string, error) {
	return t.GetWith(name, "")
}

// GetDefault returns the value of a plain scalar key, or def if absent.
func (t *Table) GetDefault(name, def string) string {
	return t.GetWithDefault(name, "", def)
}

// GetWith returns the value of an identifier-qualified key.
// Returns an error wrapping ErrNotFound if the (key, identifier) pair was
// never defined. An empty value is a defined value, not an error.
func (t *Table) GetWith(name, ident string) (string, error) {
	key := Key{Name: name, Ident: ident}
	v, ok := t.values[key]
	if !ok {
		return "", fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	return v, nil
}

// GetWithDefault returns the value of an identifier-qualified key, or def
// if absent.
func (t *Table) GetWithDefault(name, ident, def string) string {
	if v, ok := t.values[Key{Name: name, Ident: ident}]; ok {
		return v
	}
	return def
}

// Has reports whether the (key, identifier) pair is defined. Use an empty
// ident for plain scalar keys.
func (t *Table) Has(name, ident string) bool {
	_, ok := t.values[Key{Name: name, Ident: ident}]
	return ok
}

// CSV splits a comma-separated value into trimmed tokens, dropping empty
// ones. An absent key or blank right-hand side yields no tokens; callers
// that need to tell the two apart should check Has first.
func (t *Table) CSV(name, ident string) []string {
	raw := t.GetWithDefault(name, ident, "")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// IntCSV is CSV with every token parsed as an integer.
func (t *Table) IntCSV(name, ident string) ([]int, error) {
	tokens := t.CSV(name, ident)
	if tokens == nil {
		return nil, nil
	}

	values := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%q: token %q is not an integer", Key{Name: name, Ident: ident}, tok)
		}
		values[i] = n
	}
	return values, nil
}

// Bool returns a scalar parsed as a boolean, or def if the key is absent
// or the value doesn't parse.
func (t *Table) Bool(name string, def bool) bool {
	v, err := t.Get(name)
	if err != nil {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// Int returns a scalar parsed as an integer, or def if the key is absent
// or the value doesn't parse.
func (t *Table) Int(name string, def int) int {
	v, err := t.Get(name)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Float returns a scalar parsed as a float, or def if the key is absent or
// the value doesn't parse.
func (t *Table) Float(name string, def float64) float64 {
	v, err := t.Get(name)
	if err != nil {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// Identifiers returns the sorted identifiers defined under a namespace,
// e.g. Identifiers("target.config") lists every configured target name.
func (t *Table) Identifiers(name string) []string {
	var idents []string
	for _, key := range t.order {
		if key.Name == name && key.Ident != "" {
			idents = append(idents, key.Ident)
		}
	}
	sort.Strings(idents)
	return idents
}
