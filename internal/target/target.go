// Package target assembles integration-test target profiles from a loaded
// settings table.
//
// A target is defined by its target.config entry; target.description,
// target.prereq and target.torrc entries under the same identifier attach
// the remaining attributes.
package target

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"tortest/internal/conf"
)

// Settings keys making up a target definition.
const (
	KeyConfig      = "target.config"
	KeyDescription = "target.description"
	KeyPrereq      = "target.prereq"
	KeyTorrc       = "target.torrc"
)

// attributeKeys are the namespaces that attach attributes to an existing
// target rather than defining one.
var attributeKeys = []string{KeyDescription, KeyPrereq, KeyTorrc}

// ErrUnknown is wrapped by lookups of target names that aren't defined.
var ErrUnknown = errors.New("unknown target")

// UnknownError reports a lookup of an undefined target, with close matches
// when any exist.
type UnknownError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown target %q", e.Name)
	}
	return fmt.Sprintf("unknown target %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownError) Unwrap() error { return ErrUnknown }

// Target is one integration-test profile.
type Target struct {
	Name        string
	ConfigPath  string   // runner settings path toggled by this target
	Description string   // free-form help text
	Prereq      string   // minimum tor version, empty if none
	Torrc       []string // torrc option tokens
	HasTorrc    bool     // a blank torrc entry is an empty list, not absence
}

// Set holds the targets defined by a settings table, in definition order.
type Set struct {
	targets map[string]Target
	names   []string
}

// FromTable builds the target set from a settings table. Targets appear in
// the order of their target.config entries.
func FromTable(c *conf.Table) *Set {
	s := &Set{targets: make(map[string]Target)}

	for _, key := range c.Keys() {
		if key.Name != KeyConfig || key.Ident == "" {
			continue
		}

		tgt := Target{
			Name:        key.Ident,
			ConfigPath:  c.GetWithDefault(KeyConfig, key.Ident, ""),
			Description: c.GetWithDefault(KeyDescription, key.Ident, ""),
			Prereq:      c.GetWithDefault(KeyPrereq, key.Ident, ""),
			HasTorrc:    c.Has(KeyTorrc, key.Ident),
		}
		if tgt.HasTorrc {
			tgt.Torrc = c.CSV(KeyTorrc, key.Ident)
		}

		s.targets[tgt.Name] = tgt
		s.names = append(s.names, tgt.Name)
	}

	return s
}

// Names returns all target names in definition order.
func (s *Set) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Len returns the number of targets.
func (s *Set) Len() int {
	return len(s.names)
}

// Get looks up one target by name. An unknown name yields an *UnknownError
// carrying fuzzy-matched suggestions.
func (s *Set) Get(name string) (Target, error) {
	if tgt, ok := s.targets[name]; ok {
		return tgt, nil
	}
	return Target{}, &UnknownError{Name: name, Suggestions: s.Suggest(name, 3)}
}

// Suggest returns up to max target names fuzzy-matching the given input.
func (s *Set) Suggest(name string, max int) []string {
	matches := fuzzy.Find(name, s.names)
	if len(matches) > max {
		matches = matches[:max]
	}

	var suggestions []string
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// Orphaned returns attribute entries (description, prereq, torrc) whose
// identifier has no target.config definition. These are silently dead
// settings, usually typos; the check command reports them.
func (s *Set) Orphaned(c *conf.Table) []conf.Key {
	var orphans []conf.Key
	for _, name := range attributeKeys {
		for _, ident := range c.Identifiers(name) {
			if _, ok := s.targets[ident]; !ok {
				orphans = append(orphans, conf.Key{Name: name, Ident: ident})
			}
		}
	}
	return orphans
}
