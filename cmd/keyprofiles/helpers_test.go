package main

import (
	"bytes"
	"testing"

	"github.com/jonathan/keyprofiles/internal/config"
)

// runCLI executes the root command in-process and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// Keep the caller's environment from leaking into the run.
	for _, env := range []string{config.EnvMajor, config.EnvMinor, config.EnvStrict, config.EnvDatabaseURL} {
		t.Setenv(env, "")
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
