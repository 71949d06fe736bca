//go:build integration

package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTargets_Table(t *testing.T) {
	args := append(settingsArgs("settings.cfg"), "targets", "--no-color")
	stdout, _, err := runCommand(t, args...)
	if err != nil {
		t.Fatalf("tortest targets failed: %v", err)
	}

	if !strings.Contains(stdout, "NAME") || !strings.Contains(stdout, "TORRC") {
		t.Errorf("missing table header:\n%s", stdout)
	}
	if !strings.Contains(stdout, "RUN_PASSWORD") {
		t.Errorf("missing RUN_PASSWORD row:\n%s", stdout)
	}
	if !strings.Contains(stdout, "PORT, PASSWORD") {
		t.Errorf("missing torrc summary:\n%s", stdout)
	}
}

func TestTargets_JSON(t *testing.T) {
	args := append(settingsArgs("settings.cfg"), "targets", "--json")
	stdout, _, err := runCommand(t, args...)
	if err != nil {
		t.Fatalf("tortest targets --json failed: %v", err)
	}

	var entries []struct {
		Name   string   `json:"name"`
		Config string   `json:"config"`
		Torrc  []string `json:"torrc"`
	}
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}

	if len(entries) != 10 {
		t.Fatalf("got %d targets, want 10", len(entries))
	}
	// Definition order is preserved.
	if entries[0].Name != "ONLINE" || entries[9].Name != "RUN_ALL" {
		t.Errorf("unexpected order: first %s, last %s", entries[0].Name, entries[9].Name)
	}
}

func TestTargets_MergedOverride(t *testing.T) {
	args := append(settingsArgs("settings.cfg", "override.cfg"), "targets", "--json")
	stdout, _, err := runCommand(t, args...)
	if err != nil {
		t.Fatalf("tortest targets with override failed: %v", err)
	}

	if !strings.Contains(stdout, "Tests that require a network connection") {
		t.Errorf("override description not applied:\n%s", stdout)
	}
}

func TestTargets_NoSettings(t *testing.T) {
	_, _, err := runCommand(t, "targets")
	if err == nil {
		t.Fatal("targets without settings should fail")
	}
	if !strings.Contains(err.Error(), "no settings file") {
		t.Errorf("error = %v", err)
	}
}
