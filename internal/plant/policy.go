package plant

import (
	"context"
	"fmt"
	"path"

	"github.com/google/go-cmp/cmp"
	"github.com/vk/gridsow/internal/ctxlog"
	"github.com/vk/gridsow/internal/tree"
)

// MetaKey is the root key reserved for injected metadata.
const MetaKey = "__meta__"

// Decision is the outcome of comparing a derived tree with the corpus.
type Decision int

const (
	Create Decision = iota
	DuplicateIdentical
	DuplicateConflicting
)

func (d Decision) String() string {
	switch d {
	case Create:
		return "create"
	case DuplicateIdentical:
		return "duplicate-identical"
	case DuplicateConflicting:
		return "duplicate-conflicting"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Slot is the decision for one name.
type Slot struct {
	Name     string
	Decision Decision
	// Write reports whether Tree should be persisted under Name.
	Write bool
	// Tree is the tree that ends up under Name: the derived tree when
	// Write is set, the stored one otherwise.
	Tree tree.Value
	// Diff is a human-readable stored/derived difference for conflicting
	// duplicates.
	Diff string
}

// Policy holds the planting options.
type Policy struct {
	Overwrite bool
	Repeat    int
	// IgnoreKeys are root keys skipped by the comparison. Nil means
	// []string{MetaKey}.
	IgnoreKeys []string
}

// SlotNames returns the names a tree is planted under.
func (p Policy) SlotNames(name string) ([]string, error) {
	if p.Repeat < 0 {
		return nil, fmt.Errorf("%w: %d", ErrRepeat, p.Repeat)
	}
	if p.Repeat == 0 {
		return []string{name}, nil
	}
	names := make([]string, p.Repeat)
	for i := range names {
		names[i] = path.Join(name, fmt.Sprintf("%02d", i))
	}
	return names, nil
}

// Decide compares v against lookup for every slot of name.
func (p Policy) Decide(ctx context.Context, name string, v tree.Value, lookup Lookup) ([]Slot, error) {
	names, err := p.SlotNames(name)
	if err != nil {
		return nil, err
	}
	slots := make([]Slot, 0, len(names))
	for _, n := range names {
		slot, err := p.decide(ctx, n, v, lookup)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (p Policy) decide(ctx context.Context, name string, v tree.Value, lookup Lookup) (Slot, error) {
	logger := ctxlog.FromContext(ctx)
	stored, found, err := lookup.Load(ctx, name)
	if err != nil {
		return Slot{}, fmt.Errorf("failed to look up %q: %w", name, err)
	}
	if !found {
		return Slot{Name: name, Decision: Create, Write: true, Tree: v}, nil
	}

	if tree.EqualIgnoring(stored, v, p.ignoreKeys()...) {
		logger.Info("Duplicate is identical.", "name", name, "overwrite", p.Overwrite)
		slot := Slot{Name: name, Decision: DuplicateIdentical, Write: p.Overwrite, Tree: stored}
		if p.Overwrite {
			slot.Tree = v
		}
		return slot, nil
	}

	diff := cmp.Diff(tree.ToNative(p.strip(stored)), tree.ToNative(p.strip(v)))
	if p.Overwrite {
		logger.Warn("Duplicate differs; overwriting.", "name", name)
		return Slot{Name: name, Decision: DuplicateConflicting, Write: true, Tree: v, Diff: diff}, nil
	}
	logger.Warn("Duplicate differs; keeping the stored config.", "name", name)
	return Slot{Name: name, Decision: DuplicateConflicting, Tree: stored, Diff: diff}, nil
}

// Plant decides every slot of name and stores the ones marked for writing.
func (p Policy) Plant(ctx context.Context, name string, v tree.Value, corpus Corpus) ([]Slot, error) {
	slots, err := p.Decide(ctx, name, v, corpus)
	if err != nil {
		return nil, err
	}
	for _, s := range slots {
		if !s.Write {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := corpus.Store(ctx, s.Name, s.Tree); err != nil {
			return nil, fmt.Errorf("failed to store %q: %w", s.Name, err)
		}
		ctxlog.FromContext(ctx).Debug("Planted config.", "name", s.Name, "decision", s.Decision)
	}
	return slots, nil
}

func (p Policy) ignoreKeys() []string {
	if p.IgnoreKeys == nil {
		return []string{MetaKey}
	}
	return p.IgnoreKeys
}

// strip drops the ignored root keys so the diff only shows real changes.
func (p Policy) strip(v tree.Value) tree.Value {
	m := v.Mapping()
	if m == nil {
		return v
	}
	out := v.Clone()
	for _, k := range p.ignoreKeys() {
		if m.Has(k) {
			_ = out.Mapping().Delete(k)
		}
	}
	return out
}
