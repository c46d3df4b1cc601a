package builder

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/vk/gridsow/internal/clause"
	"github.com/vk/gridsow/internal/literal"
	"github.com/vk/gridsow/internal/tracer"
	"github.com/vk/gridsow/internal/tree"
	"github.com/vk/gridsow/internal/treepath"
)

// add merges a mapping argument into the pointed mapping, or with one
// object token inserts the argument at that index or key.
func add(tr *tracer.Tracer, objs []string, c clause.Raw) error {
	if !c.HasArg {
		return fmt.Errorf("%w: add requires an argument", clause.ErrMalformedClause)
	}
	if len(objs) > 1 {
		return fmt.Errorf("%w: add deals with 1 object every time, got %q", clause.ErrMalformedClause, objs)
	}

	pointed := tr.Pointed()
	arg := c.Arg.Clone()

	if len(objs) == 1 {
		field := objs[0]
		switch pointed.Kind() {
		case tree.KindSequence:
			index, err := parseIndex(field)
			if err != nil {
				return err
			}
			return pointed.Sequence().Insert(index, arg)
		case tree.KindMapping:
			if err := pointed.Mapping().Add(field, arg); err != nil {
				return fmt.Errorf("%w in %s", err, pointed)
			}
			return nil
		default:
			return fmt.Errorf("%w: %s is not a container node", tree.ErrContainerKind, pointed)
		}
	}

	if pointed.Kind() != tree.KindMapping {
		return fmt.Errorf("%w: %s is not a mapping, cannot use bare add", tree.ErrContainerKind, pointed)
	}
	if arg.Kind() != tree.KindMapping {
		return fmt.Errorf("%w: expect a mapping when adding into a mapping, got %s", tree.ErrContainerKind, arg.Kind())
	}
	target := pointed.Mapping()
	for _, k := range arg.Mapping().Keys() {
		if target.Has(k) {
			return fmt.Errorf("%w: %q already present in %s", tree.ErrDuplicateKey, k, pointed)
		}
	}
	for _, e := range arg.Mapping().Entries() {
		target.Set(e.Key, e.Value)
	}
	return nil
}

// replace overwrites the pointed node after coercing the argument to the
// old value's type.
func replace(tr *tracer.Tracer, objs []string, c clause.Raw) error {
	if len(objs) != 0 {
		return fmt.Errorf("%w: replace takes no object tokens, got %q", clause.ErrMalformedClause, objs)
	}
	if !c.HasArg {
		return fmt.Errorf("%w: replace requires an argument", clause.ErrMalformedClause)
	}

	v, err := literal.Coerce(tr.Pointed(), c.Arg)
	if err != nil {
		return fmt.Errorf("at %q: %w", tr.Path(), err)
	}
	return tr.Set(v.Clone())
}

// remove deletes the named keys or indices from the pointed container.
// Sequence indices refer to positions before any of them is removed.
func remove(tr *tracer.Tracer, objs []string, c clause.Raw) error {
	if c.HasArg {
		return fmt.Errorf("%w: del takes no argument; write it as a bare string", clause.ErrMalformedClause)
	}
	if len(objs) == 0 {
		return fmt.Errorf("%w: del requires at least one key or index", clause.ErrMalformedClause)
	}

	pointed := tr.Pointed()
	switch pointed.Kind() {
	case tree.KindMapping:
		m := pointed.Mapping()
		seen := make(map[string]struct{}, len(objs))
		for _, k := range objs {
			if _, dup := seen[k]; dup {
				return fmt.Errorf("%w: %q listed twice", clause.ErrMalformedClause, k)
			}
			seen[k] = struct{}{}
			if !m.Has(k) {
				return fmt.Errorf("%w: %q in %s", tree.ErrMissingKey, k, pointed)
			}
		}
		for _, k := range objs {
			if err := m.Delete(k); err != nil {
				return err
			}
		}
		return nil
	case tree.KindSequence:
		seq := pointed.Sequence()
		indices := make([]int, 0, len(objs))
		for _, obj := range objs {
			index, err := parseIndex(obj)
			if err != nil {
				return err
			}
			if index >= seq.Len() {
				return fmt.Errorf("%w: %d not in [0, %d)", tree.ErrIndexRange, index, seq.Len())
			}
			if slices.Contains(indices, index) {
				return fmt.Errorf("%w: index %d listed twice", clause.ErrMalformedClause, index)
			}
			indices = append(indices, index)
		}
		slices.Sort(indices)
		for i := len(indices) - 1; i >= 0; i-- {
			if err := seq.Delete(indices[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s is not a container node", tree.ErrContainerKind, pointed)
	}
}

func parseIndex(token string) (int, error) {
	if !treepath.IsDigits(token) {
		return 0, fmt.Errorf("%w: %q is not an index", tree.ErrIndexRange, token)
	}
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", tree.ErrIndexRange, token, err)
	}
	return index, nil
}
