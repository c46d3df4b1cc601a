package integration_tests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridsow/internal/app"
	"github.com/vk/gridsow/internal/testutil"
	"github.com/vk/gridsow/internal/tree"
)

const sweepYAML = `
desc: learning rate and fun sweep
base:
  train:
    epochs: 40
    lr: 0.1
    fun: 1
base_modify:
  - train.epochs: 50
  - train.lr: 0.2
particular:
  - name: exp1
    modify:
      - train.epochs: 70
    expand:
      - alias: [slow, medium, fast]
        train.lr: [0.5, 0.6, 0.7]
      - alias: [lazy, hard]
        train.fun: [2, 3]
`

// TestSow_GridExpansion plants the six leaves of a two-tier sweep.
func TestSow_GridExpansion(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{"launch.yml": sweepYAML}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{File: "launch.yml", Key: "v1", NestAt: -1})

	// --- Assert ---
	require.NoError(t, result.Err)
	names := []string{
		"exp1_fast_hard", "exp1_fast_lazy",
		"exp1_medium_hard", "exp1_medium_lazy",
		"exp1_slow_hard", "exp1_slow_lazy",
	}
	assert.Equal(t, names, testutil.PlantedNames(t, result, "v1"))

	cfg := testutil.ReadPlanted(t, result, "v1", "exp1_medium_hard")
	assert.Equal(t, tree.Int(70), testutil.Field(t, cfg, "train", "epochs"))
	assert.True(t, tree.Equal(tree.Float(0.6), testutil.Field(t, cfg, "train", "lr")))
	assert.Equal(t, tree.Int(3), testutil.Field(t, cfg, "train", "fun"))

	paths := testutil.ReadPathLog(t, result, "v1")
	require.Len(t, paths, 6)
	assert.Equal(t, filepath.Join(result.Dir, "runs_v1", "exp1_slow_lazy"), paths[0])
	assert.Equal(t, filepath.Join(result.Dir, "runs_v1", "exp1_fast_hard"), paths[5])
}

// TestSow_NestAt groups leaves under per-tier directories.
func TestSow_NestAt(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"launch.yml": sweepYAML}, app.Config{File: "launch.yml", Key: "n", NestAt: 0})

	require.NoError(t, result.Err)
	assert.Equal(t, []string{
		"exp1_fast/hard", "exp1_fast/lazy",
		"exp1_medium/hard", "exp1_medium/lazy",
		"exp1_slow/hard", "exp1_slow/lazy",
	}, testutil.PlantedNames(t, result, "n"))
}

// TestSow_Mock prints configs without touching the filesystem.
func TestSow_Mock(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"launch.yml": sweepYAML}, app.Config{
		File: "launch.yml", Key: "m", NestAt: -1, Mock: true, MockNames: []string{"exp1_slow_hard"},
	})

	require.NoError(t, result.Err)
	assert.Equal(t, "0: exp1_slow_hard\ntrain:\n  epochs: 70\n  lr: 0.5\n  fun: 3\n\n", result.Output)
	assert.NoDirExists(t, filepath.Join(result.Dir, "runs_m"))
	assert.NoFileExists(t, filepath.Join(result.Dir, "exps_m.yml"))
}

// TestSow_RecordTiers accepts the list-of-records tier form.
func TestSow_RecordTiers(t *testing.T) {
	t.Parallel()

	launch := `
base: {model: {depth: 4, width: 64}, opt: adam}
particular:
  - name: arch
    expand:
      - - {alias: small, model.depth: 2, model.width: 32}
        - {alias: big, model.depth: 8, model.width: 256}
      - {alias: [sgd, adam], opt: [sgd, adam]}
`
	result := testutil.RunIntegrationTest(t, map[string]string{"launch.yml": launch}, app.Config{File: "launch.yml", Key: "r", NestAt: -1})

	require.NoError(t, result.Err)
	assert.Equal(t, []string{"arch_big_adam", "arch_big_sgd", "arch_small_adam", "arch_small_sgd"}, testutil.PlantedNames(t, result, "r"))
	cfg := testutil.ReadPlanted(t, result, "r", "arch_big_sgd")
	assert.Equal(t, tree.Int(256), testutil.Field(t, cfg, "model", "width"))
	assert.Equal(t, tree.String("sgd"), testutil.Field(t, cfg, "opt"))
}
