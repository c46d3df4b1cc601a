package tracer

import (
	"fmt"

	"github.com/vk/gridsow/internal/tree"
	"github.com/vk/gridsow/internal/treepath"
)

// rootToken is the key under which the synthetic wrapper holds the root.
const rootToken = "_"

// Tracer is a movable pointer into a tree. The zero value is not usable;
// construct one with New.
type Tracer struct {
	root   tree.Value
	parent tree.Value
	child  treepath.Token
	path   treepath.Path
}

// New creates a Tracer pointing at src itself. src is not copied: edits
// made through the tracer are edits to src's containers.
func New(src tree.Value) *Tracer {
	wrapper := tree.NewMapping(tree.E(rootToken, src))
	return &Tracer{
		root:   wrapper,
		parent: wrapper,
		child:  treepath.KeyToken(rootToken),
	}
}

// State returns the root value, reflecting any edit made through Set.
func (t *Tracer) State() tree.Value {
	v, _ := t.root.Mapping().Get(rootToken)
	return v
}

// Parent returns the container holding the pointed node. At the root it is
// the synthetic one-entry wrapper.
func (t *Tracer) Parent() tree.Value { return t.parent }

// ChildToken returns the token that selects the pointed node in Parent.
func (t *Tracer) ChildToken() treepath.Token { return t.child }

// Path returns the tokens followed so far.
func (t *Tracer) Path() treepath.Path { return t.path }

// Pointed returns the node currently addressed.
func (t *Tracer) Pointed() tree.Value {
	v, _ := lookup(t.parent, t.child)
	return v
}

// Advance moves the pointer down along a dotted path, relative to the
// current position. It stops at the first token that cannot be followed.
func (t *Tracer) Advance(rawPath string) error {
	path, err := treepath.Parse(rawPath)
	if err != nil {
		return &PathResolutionError{Path: rawPath, Position: 0, Token: rawPath, Node: t.State(), Cause: err}
	}
	return t.AdvancePath(path)
}

// AdvancePath is Advance for an already parsed path.
func (t *Tracer) AdvancePath(path treepath.Path) error {
	for i, token := range path {
		node := t.Pointed()
		if _, err := lookup(node, token); err != nil {
			return &PathResolutionError{
				Path:     path.String(),
				Position: i,
				Token:    token.Key,
				Node:     node.Clone(),
				Cause:    err,
			}
		}
		t.parent = node
		t.child = token
		t.path = append(t.path, token)
	}
	return nil
}

// Set overwrites the pointed node inside its parent.
func (t *Tracer) Set(v tree.Value) error {
	switch t.parent.Kind() {
	case tree.KindMapping:
		t.parent.Mapping().Set(t.child.Key, v)
		return nil
	case tree.KindSequence:
		return t.parent.Sequence().Set(t.child.Index, v)
	default:
		return fmt.Errorf("%w: parent is a %s", tree.ErrContainerKind, t.parent.Kind())
	}
}

// lookup indexes container by token. A digit token addresses a sequence
// position, or falls back to the string key in a mapping.
func lookup(container tree.Value, token treepath.Token) (tree.Value, error) {
	switch container.Kind() {
	case tree.KindMapping:
		v, ok := container.Mapping().Get(token.Key)
		if !ok {
			return tree.Value{}, tree.ErrMissingKey
		}
		return v, nil
	case tree.KindSequence:
		if !token.IsIndex() {
			return tree.Value{}, fmt.Errorf("%w: key into a sequence", tree.ErrContainerKind)
		}
		v, ok := container.Sequence().Get(token.Index)
		if !ok {
			return tree.Value{}, tree.ErrIndexRange
		}
		return v, nil
	default:
		return tree.Value{}, fmt.Errorf("%w: cannot index into a %s", tree.ErrContainerKind, container.Kind())
	}
}
