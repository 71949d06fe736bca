//go:build integration

package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestShow_ByName(t *testing.T) {
	args := append(settingsArgs("settings.cfg"), "show", "RUN_PASSWORD", "--no-color")
	stdout, _, err := runCommand(t, args...)
	if err != nil {
		t.Fatalf("tortest show failed: %v", err)
	}

	for _, want := range []string{
		"RUN_PASSWORD",
		"test.target.run.password",
		"password authentication",
		"PORT, PASSWORD",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestShow_JSON(t *testing.T) {
	args := append(settingsArgs("settings.cfg"), "show", "RUN_PTRACE", "--json")
	stdout, _, err := runCommand(t, args...)
	if err != nil {
		t.Fatalf("tortest show --json failed: %v", err)
	}

	var tgt struct {
		Name   string   `json:"name"`
		Prereq string   `json:"prereq"`
		Torrc  []string `json:"torrc"`
	}
	if err := json.Unmarshal([]byte(stdout), &tgt); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if tgt.Prereq != "0.2.3.5-alpha" {
		t.Errorf("prereq = %q", tgt.Prereq)
	}
	if len(tgt.Torrc) != 2 {
		t.Errorf("torrc = %v", tgt.Torrc)
	}
}

func TestShow_UnknownSuggests(t *testing.T) {
	args := append(settingsArgs("settings.cfg"), "show", "RUN_PASWORD")
	_, _, err := runCommand(t, args...)
	if err == nil {
		t.Fatal("show of unknown target should fail")
	}
	if !strings.Contains(err.Error(), "did you mean") || !strings.Contains(err.Error(), "RUN_PASSWORD") {
		t.Errorf("error without suggestion: %v", err)
	}
}

func TestShow_NoArgNotInteractive(t *testing.T) {
	// Under go test stdin isn't a TTY, so the selector can't run.
	args := append(settingsArgs("settings.cfg"), "show")
	_, _, err := runCommand(t, args...)
	if err == nil {
		t.Fatal("show without a target should fail when not interactive")
	}
	if !strings.Contains(err.Error(), "target name required") {
		t.Errorf("error = %v", err)
	}
}
