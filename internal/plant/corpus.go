package plant

import (
	"context"

	"github.com/vk/gridsow/internal/tree"
)

// Lookup finds trees that were materialized earlier.
type Lookup interface {
	// Load returns the tree stored under name. found is false when no
	// experiment exists under that name.
	Load(ctx context.Context, name string) (v tree.Value, found bool, err error)
}

// Corpus is a Lookup that can also persist trees.
//
// Implementations must be safe for concurrent use.
type Corpus interface {
	Lookup
	// Store writes v under name, replacing whatever was there.
	Store(ctx context.Context, name string, v tree.Value) error
}
