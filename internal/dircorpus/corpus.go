package dircorpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/vk/gridsow/internal/codec"
	"github.com/vk/gridsow/internal/ctxlog"
	"github.com/vk/gridsow/internal/fsutil"
	"github.com/vk/gridsow/internal/plant"
	"github.com/vk/gridsow/internal/tree"
)

// ConfigFile is the file name a planted tree is written to.
const ConfigFile = "config.yml"

// ErrName indicates a slot name that would escape the run directory.
var ErrName = errors.New("dircorpus: invalid experiment name")

var _ plant.Corpus = (*Corpus)(nil)

// Corpus stores experiments under Root.
type Corpus struct {
	root string
}

// New returns a corpus rooted at root. The directory is created on the
// first Store.
func New(root string) (*Corpus, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve run directory %s: %w", root, err)
	}
	return &Corpus{root: abs}, nil
}

// Root returns the absolute run directory.
func (c *Corpus) Root() string { return c.root }

// Dir returns the absolute directory of the experiment called name.
func (c *Corpus) Dir(name string) (string, error) {
	rel := filepath.FromSlash(name)
	if name == "" || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrName, name)
	}
	return filepath.Join(c.root, rel), nil
}

// Load reads the config planted under name.
func (c *Corpus) Load(ctx context.Context, name string) (tree.Value, bool, error) {
	dir, err := c.Dir(name)
	if err != nil {
		return tree.Value{}, false, err
	}
	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return tree.Value{}, false, nil
	}
	v, err := codec.ReadFile(path)
	if err != nil {
		return tree.Value{}, false, err
	}
	ctxlog.FromContext(ctx).Debug("Loaded existing config.", "path", path)
	return v, true, nil
}

// Store writes v to name's config.yml, replacing it atomically.
func (c *Corpus) Store(ctx context.Context, name string, v tree.Value) error {
	dir, err := c.Dir(name)
	if err != nil {
		return err
	}
	data, err := codec.EncodeYAML(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create experiment directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ConfigFile+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	path := filepath.Join(dir, ConfigFile)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move config into place: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Wrote config.", "path", path, "bytes", len(data))
	return nil
}

// Names lists every planted experiment, sorted.
func (c *Corpus) Names() ([]string, error) {
	files, err := fsutil.FindFilesNamed(c.root, ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.root, err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(c.root, filepath.Dir(f))
		if err != nil {
			return nil, err
		}
		if rel != "." {
			names = append(names, filepath.ToSlash(rel))
		}
	}
	slices.Sort(names)
	return names, nil
}
