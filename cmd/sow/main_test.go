package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Plants(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	launch := `
base: {train: {lr: 0.1}}
particular:
  - name: exp1
    expand: [{alias: [a, b], train.lr: [0.2, 0.3]}]
`
	filePath := filepath.Join(dir, "launch.yml")
	require.NoError(t, os.WriteFile(filePath, []byte(launch), 0o600))
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-f", filePath, "-k", "t", "--dir", dir})

	// --- Assert ---
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "runs_t", "exp1_a", "config.yml"))
	require.FileExists(t, filepath.Join(dir, "runs_t", "exp1_b", "config.yml"))
	require.FileExists(t, filepath.Join(dir, "exps_t.yml"))
	require.Contains(t, logs.String(), "Sowing finished.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "launch.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte("base = {\n"), 0o600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-f", filePath, "-k", "t", "--dir", dir})
	require.ErrorContains(t, err, "failed to parse HCL file")
}
