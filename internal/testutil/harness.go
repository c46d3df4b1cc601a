// Package testutil holds the harness shared by the integration tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gridsow/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Dir is the temporary root the files were written to. It is also the
	// output directory of the run.
	Dir       string
	Output    string
	LogOutput string
	Summary   *app.Summary
	Err       error
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files into a fresh temporary
// directory and runs the app there.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	WriteFiles(t, tmpDir, files)
	return RunInDir(ctx, t, tmpDir, cfg)
}

// RunInDir runs the app against files already present in dir, so a test
// can sow the same directory more than once. cfg.File is relative to dir,
// an empty cfg.Dir means dir itself and an empty cfg.Key means "test".
func RunInDir(ctx context.Context, t *testing.T, dir string, cfg app.Config) *HarnessResult {
	t.Helper()

	cfg.File = filepath.Join(dir, cfg.File)
	if cfg.Dir == "" {
		cfg.Dir = dir
	}
	if cfg.Key == "" {
		cfg.Key = "test"
	}

	config, err := app.NewConfig(cfg)
	require.NoError(t, err)
	testApp, out, logs := app.SetupAppTest(t, config)

	summary, runErr := testApp.Run(ctx)

	return &HarnessResult{
		Dir:       dir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Summary:   summary,
		Err:       runErr,
	}
}

// WriteFiles writes each file under root, creating parent directories.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
}
