package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// cliEnv isolates a CLI run: an empty config file and a private database
// directory, so tests never read the user's settings or data.
type cliEnv struct {
	dir        string
	configPath string
	dbDir      string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "shipreport.yaml")
	if err := os.WriteFile(configPath, nil, 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	return &cliEnv{
		dir:        dir,
		configPath: configPath,
		dbDir:      filepath.Join(dir, "db"),
	}
}

// run executes the root command with args and returns stdout and stderr.
func (e *cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.configPath, "--db-dir", e.dbDir}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustRun is run that fails the test on error.
func (e *cliEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()

	stdout, stderr, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\nstderr: %s", args, err, stderr)
	}
	return stdout
}

// writeFile writes content to name inside the environment directory.
func (e *cliEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
