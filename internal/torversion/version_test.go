package torversion

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input                      string
		major, minor, micro, patch int
		status                     string
	}{
		{"0.1.2.3-tag", 0, 1, 2, 3, "tag"},
		{"0.1.2.3", 0, 1, 2, 3, ""},
		{"0.1.2-tag", 0, 1, 2, 0, "tag"},
		{"0.1.2", 0, 1, 2, 0, ""},
		{"0.1.2.3-", 0, 1, 2, 3, ""}, // empty tag is still a tag
		{"0.2.2.35 (git-73ff13ab3cc9570d)", 0, 2, 2, 35, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if v.Major != tt.major || v.Minor != tt.minor || v.Micro != tt.micro || v.Patch != tt.patch {
				t.Errorf("Parse(%q) = %d.%d.%d.%d, want %d.%d.%d.%d",
					tt.input, v.Major, v.Minor, v.Micro, v.Patch,
					tt.major, tt.minor, tt.micro, tt.patch)
			}
			if v.Status != tt.status {
				t.Errorf("Parse(%q).Status = %q, want %q", tt.input, v.Status, tt.status)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"1.2.3.4nodash",
		"1.2.3.a",
		"1.2.a.4",
		"1x2x3x4",
		"12.3",
		"1.-2.3",
	}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) should fail", input)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	greater := [][2]string{
		{"1.1.2.3-tag", "0.1.2.3-tag"},
		{"0.2.2.3-tag", "0.1.2.3-tag"},
		{"0.1.3.3-tag", "0.1.2.3-tag"},
		{"0.1.2.4-tag", "0.1.2.3-tag"},
		{"0.1.2.3-tag", "0.1.2-tag"}, // missing patch counts as zero
		{"0.1.2.3-tag", "0.1.2"},
	}
	for _, pair := range greater {
		a, b := mustParse(t, pair[0]), mustParse(t, pair[1])
		if a.Compare(b) != 1 {
			t.Errorf("Compare(%s, %s) = %d, want 1", pair[0], pair[1], a.Compare(b))
		}
		if b.Compare(a) != -1 {
			t.Errorf("Compare(%s, %s) = %d, want -1", pair[1], pair[0], b.Compare(a))
		}
	}

	equal := [][2]string{
		{"0.1.2.3-ugg", "0.1.2.3-tag"}, // status tags don't order
		{"0.1.2.3-tag", "0.1.2.3-tag"},
		{"0.1.2", "0.1.2.0"},
		{"0.1.2-tag", "0.1.2.0-tag"},
		{"0.1.2.3-tag", "0.1.2.3"},
		{"0.1.2.3", "0.1.2.3"},
	}
	for _, pair := range equal {
		a, b := mustParse(t, pair[0]), mustParse(t, pair[1])
		if a.Compare(b) != 0 {
			t.Errorf("Compare(%s, %s) = %d, want 0", pair[0], pair[1], a.Compare(b))
		}
	}
}

func TestAtLeast(t *testing.T) {
	t.Parallel()

	have := mustParse(t, "0.2.2.35")

	if !have.AtLeast(mustParse(t, "0.2.2.13-alpha")) {
		t.Error("0.2.2.35 should satisfy 0.2.2.13-alpha")
	}
	if !have.AtLeast(mustParse(t, "0.2.2.35")) {
		t.Error("a version should satisfy itself")
	}
	if have.AtLeast(mustParse(t, "0.2.3")) {
		t.Error("0.2.2.35 should not satisfy 0.2.3")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	// String renders exactly what was parsed.
	for _, input := range []string{
		"0.1.2.3-tag",
		"0.1.2.3",
		"0.1.2",
		"0.1.2.3-",
		"0.2.2.35 (git-73ff13ab3cc9570d)",
	} {
		if got := mustParse(t, input).String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func mustParse(t *testing.T, s string) Version {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return v
}
