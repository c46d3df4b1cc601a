package inmemorycorpus

import (
	"context"
	"slices"
	"sync"

	"github.com/vk/gridsow/internal/plant"
	"github.com/vk/gridsow/internal/tree"
)

var _ plant.Corpus = (*Corpus)(nil)

// Corpus is an in-memory implementation of plant.Corpus using sync.Map.
// Each experiment name is independent, so writes to different names never
// contend.
type Corpus struct {
	trees sync.Map // Key: experiment name, Value: tree.Value
}

// New creates a new, empty in-memory corpus.
func New() *Corpus {
	return &Corpus{}
}

// Load retrieves the tree stored under name.
func (c *Corpus) Load(ctx context.Context, name string) (tree.Value, bool, error) {
	v, ok := c.trees.Load(name)
	if !ok {
		return tree.Value{}, false, nil
	}
	return v.(tree.Value).Clone(), true, nil
}

// Store records v under name.
func (c *Corpus) Store(ctx context.Context, name string, v tree.Value) error {
	c.trees.Store(name, v.Clone())
	return nil
}

// Names returns every stored name, sorted.
func (c *Corpus) Names() []string {
	var names []string
	c.trees.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	return names
}
