package conf

import (
	"reflect"
	"testing"
)

func TestMergeRightBiased(t *testing.T) {
	t.Parallel()

	base := mustParse(t, `integ.test.core true
target.config ONLINE => test.target.online
target.torrc RUN_PASSWORD => PORT, PASSWORD
`)
	override := mustParse(t, `target.config ONLINE => test.target.online_local
integ.extra.flag yes
`)

	merged := Merge(base, override)

	// Overridden pair takes the override's value.
	if got := merged.GetWithDefault("target.config", "ONLINE", ""); got != "test.target.online_local" {
		t.Errorf("overridden value = %q, want override's", got)
	}
	// Pairs only in base keep base values.
	if got := merged.GetDefault("integ.test.core", ""); got != "true" {
		t.Errorf("base-only value = %q, want %q", got, "true")
	}
	if got := merged.CSV("target.torrc", "RUN_PASSWORD"); !reflect.DeepEqual(got, []string{"PORT", "PASSWORD"}) {
		t.Errorf("base-only csv = %v", got)
	}
	// Pairs only in override are added.
	if got := merged.GetDefault("integ.extra.flag", ""); got != "yes" {
		t.Errorf("override-only value = %q, want %q", got, "yes")
	}
}

func TestMergeDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "integ.test.core true\n")
	override := mustParse(t, "integ.test.core false\n")

	_ = Merge(base, override)

	if got := base.GetDefault("integ.test.core", ""); got != "true" {
		t.Errorf("base mutated: value = %q, want %q", got, "true")
	}
	if base.Len() != 1 || override.Len() != 1 {
		t.Errorf("input tables changed size: base %d, override %d", base.Len(), override.Len())
	}
}

func TestMergeOrder(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "integ.a 1\ninteg.b 2\n")
	override := mustParse(t, "integ.b 20\ninteg.c 30\n")

	merged := Merge(base, override)

	// Replaced entries keep their base position; new ones append.
	want := []Key{{Name: "integ.a"}, {Name: "integ.b"}, {Name: "integ.c"}}
	if got := merged.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("merged order = %v, want %v", got, want)
	}
}
