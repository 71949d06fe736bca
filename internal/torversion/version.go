// Package torversion parses and orders Tor version strings, as used by the
// target.prereq entries of the integration-test settings.
package torversion

import (
	"fmt"
	"regexp"
	"strconv"
)

// Version is a parsed Tor version like "0.2.2.35-alpha (git-73ff13ab)".
// The status tag and the parenthesized extra are carried for display but
// never considered when ordering versions.
type Version struct {
	Major, Minor, Micro int
	Patch               int    // 0 when absent
	Status              string // suffix after "-", e.g. "alpha"
	Extra               string // parenthesized trailer, e.g. "git-73ff13ab"

	hasPatch  bool
	hasStatus bool
	hasExtra  bool
}

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(\.(\d+))?(-(\S*))?( \((.*)\))?$`)

// Parse reads a Tor version string. Major, minor and micro components are
// required; the patch level, "-status" tag and " (extra)" trailer are
// optional.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%q is not a valid tor version", s)
	}

	// The pattern only admits digits, so these can't fail.
	v := Version{}
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	v.Micro, _ = strconv.Atoi(m[3])

	if m[4] != "" {
		v.Patch, _ = strconv.Atoi(m[5])
		v.hasPatch = true
	}
	if m[6] != "" {
		v.Status = m[7]
		v.hasStatus = true
	}
	if m[8] != "" {
		v.Extra = m[9]
		v.hasExtra = true
	}

	return v, nil
}

// String renders the version in the form it was parsed from.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
	if v.hasPatch {
		s += fmt.Sprintf(".%d", v.Patch)
	}
	if v.hasStatus {
		s += "-" + v.Status
	}
	if v.hasExtra {
		s += " (" + v.Extra + ")"
	}
	return s
}

// Compare orders two versions by their numeric components, a missing patch
// level counting as zero. Returns -1, 0 or 1. Status tags and extras are
// ignored: "0.1.2.3-alpha" and "0.1.2.3" are equal.
func (v Version) Compare(other Version) int {
	pairs := [4][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Micro, other.Micro},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v satisfies min as a prerequisite.
func (v Version) AtLeast(min Version) bool {
	return v.Compare(min) >= 0
}
