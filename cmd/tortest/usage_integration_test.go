//go:build integration

package main

import (
	"strings"
	"testing"
)

func TestUsage_PrintsHelpText(t *testing.T) {
	args := append(settingsArgs("settings.cfg"), "usage")
	stdout, _, err := runCommand(t, args...)
	if err != nil {
		t.Fatalf("tortest usage failed: %v", err)
	}

	want := "Usage: run_tests [OPTION]\n" +
		"  --target TARGET  comma separated list of integration targets\n" +
		"  --help           presents this help\n"
	if stdout != want {
		t.Errorf("output = %q, want %q", stdout, want)
	}
}

func TestUsage_MissingHelpEntry(t *testing.T) {
	args := append(settingsArgs("orphans.cfg"), "usage")
	_, _, err := runCommand(t, args...)
	if err == nil {
		t.Fatal("usage without msg.help should fail")
	}
	if !strings.Contains(err.Error(), "msg.help") {
		t.Errorf("error = %v", err)
	}
}
