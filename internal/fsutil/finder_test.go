package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesNamed(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"b/config.yml", "a/00/config.yml", "a/notes.txt", "config.yml.bak"} {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}

	files, err := FindFilesNamed(root, "config.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "00", "config.yml"),
		filepath.Join(root, "b", "config.yml"),
	}, files)

	files, err = FindFilesNamed(filepath.Join(root, "missing"), "config.yml")
	require.NoError(t, err)
	assert.Empty(t, files)

	assert.Panics(t, func() { _, _ = FindFilesNamed(root, "") })
}
