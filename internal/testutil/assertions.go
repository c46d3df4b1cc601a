package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gridsow/internal/app"
	"github.com/vk/gridsow/internal/codec"
	"github.com/vk/gridsow/internal/dircorpus"
	"github.com/vk/gridsow/internal/tree"
)

// ReadPlanted returns the config planted under name by a run with key.
func ReadPlanted(t *testing.T, result *HarnessResult, key, name string) tree.Value {
	t.Helper()
	path := filepath.Join(result.Dir, app.RunDirName(key), filepath.FromSlash(name), dircorpus.ConfigFile)
	v, err := codec.ReadFile(path)
	require.NoError(t, err, "expected a planted config for %q", name)
	return v
}

// PlantedNames lists every experiment under the run directory for key.
func PlantedNames(t *testing.T, result *HarnessResult, key string) []string {
	t.Helper()
	c, err := dircorpus.New(filepath.Join(result.Dir, app.RunDirName(key)))
	require.NoError(t, err)
	names, err := c.Names()
	require.NoError(t, err)
	return names
}

// ReadPathLog returns the paths listed in exps_<key>.yml.
func ReadPathLog(t *testing.T, result *HarnessResult, key string) []string {
	t.Helper()
	path := filepath.Join(result.Dir, app.LogFileName(key))
	_, err := os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)

	v, err := codec.ReadFile(path)
	require.NoError(t, err)
	seq := v.Sequence()
	require.NotNil(t, seq, "path log must be a list, got %s", v)

	paths := make([]string, 0, seq.Len())
	for _, item := range seq.Items() {
		s, ok := item.AsString()
		require.True(t, ok)
		paths = append(paths, s)
	}
	return paths
}

// Field walks a dotted path of mapping keys.
func Field(t *testing.T, v tree.Value, keys ...string) tree.Value {
	t.Helper()
	for _, k := range keys {
		m := v.Mapping()
		require.NotNil(t, m, "expected a mapping before %q in %s", k, v)
		next, ok := m.Get(k)
		require.True(t, ok, "missing key %q in %s", k, v)
		v = next
	}
	return v
}
