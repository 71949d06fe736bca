//go:build integration

package main

import (
	"bytes"
	"context"
	"testing"

	"tortest/internal/config"
)

// runCommand executes the command tree in-process with captured output.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	root := newRootCmd(config.Default(), &outBuf, &errBuf)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

// settingsArgs points a command at the testdata fixtures.
func settingsArgs(files ...string) []string {
	var args []string
	for _, f := range files {
		args = append(args, "-s", "testdata/"+f)
	}
	return args
}
