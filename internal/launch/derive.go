package launch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vk/gridsow/internal/builder"
	"github.com/vk/gridsow/internal/clause"
	"github.com/vk/gridsow/internal/ctxlog"
	"github.com/vk/gridsow/internal/grid"
	"github.com/vk/gridsow/internal/tree"
)

// Importer loads the tree named by `import_base`.
type Importer interface {
	Import(ctx context.Context, path string) (tree.Value, error)
}

// ImporterFunc adapts a function to the Importer interface.
type ImporterFunc func(ctx context.Context, path string) (tree.Value, error)

// Import calls f.
func (f ImporterFunc) Import(ctx context.Context, path string) (tree.Value, error) {
	return f(ctx, path)
}

// Options tunes Derive.
type Options struct {
	// Importer resolves `import_base`. Required only when a description uses it.
	Importer Importer
	// Overrides are applied to the base after `base_modify`, e.g. clauses
	// given on the command line.
	Overrides []clause.Raw
}

// Experiment is one derived config and the name segments that identify it.
type Experiment struct {
	Name    []string
	Tree    tree.Value
	Clauses []string
}

// Derive validates desc and returns every experiment it describes, in
// declaration order. When two experiments share a name, the later tree
// replaces the earlier one in the earlier position.
func Derive(ctx context.Context, desc tree.Value, opts Options) ([]Experiment, error) {
	logger := ctxlog.FromContext(ctx)
	if err := DescriptionFields.Validate(desc); err != nil {
		return nil, fmt.Errorf("launch description: %w", err)
	}
	m := desc.Mapping()

	base, err := loadBase(ctx, m, opts.Importer)
	if err != nil {
		return nil, err
	}
	if clauses, ok := m.Get("base_modify"); ok {
		if err := base.ExecuteAll(clauses); err != nil {
			return nil, fmt.Errorf("base_modify: %w", err)
		}
		logger.Debug("Applied base modifications.", "count", len(base.History()))
	}
	for _, c := range opts.Overrides {
		if err := base.Apply(c); err != nil {
			return nil, fmt.Errorf("override: %w", err)
		}
	}

	particulars, _ := m.Get("particular")
	entries := particulars.Sequence()
	if entries == nil {
		return nil, fmt.Errorf("%w: particular must be a list, got %s", ErrFieldSpec, particulars.Kind())
	}

	out := newDeposit(logger)
	for i, entry := range entries.Items() {
		if err := deriveParticular(ctx, entry, base, out); err != nil {
			return nil, fmt.Errorf("particular %d: %w", i, err)
		}
	}
	logger.Debug("Launch description derived.", "particulars", entries.Len(), "experiments", len(out.items))
	return out.items, nil
}

func loadBase(ctx context.Context, m *tree.Mapping, importer Importer) (*builder.Builder, error) {
	if raw, ok := m.Get("import_base"); ok {
		path, isString := raw.AsString()
		if !isString {
			return nil, fmt.Errorf("%w: import_base must be a path, got %s", ErrFieldSpec, raw.Kind())
		}
		if importer == nil {
			return nil, fmt.Errorf("import_base %q: no importer configured", path)
		}
		imported, err := importer.Import(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("import_base %q: %w", path, err)
		}
		ctxlog.FromContext(ctx).Debug("Imported base config.", "path", path)
		return builder.New(imported.Clone()), nil
	}
	inline, _ := m.Get("base")
	return builder.New(inline.Clone()), nil
}

func deriveParticular(ctx context.Context, entry tree.Value, base *builder.Builder, out *deposit) error {
	if err := ParticularFields.Validate(entry); err != nil {
		return err
	}
	m := entry.Mapping()
	rawName, _ := m.Get("name")
	if rawName.IsContainer() {
		return fmt.Errorf("%w: name must be a scalar, got %s", ErrFieldSpec, rawName.Kind())
	}
	name := rawName.Label()
	ctx = ctxlog.With(ctx, "particular", name)
	logger := ctxlog.FromContext(ctx)

	curr := base.Clone()
	if clauses, ok := m.Get("modify"); ok {
		if err := curr.ExecuteAll(clauses); err != nil {
			return fmt.Errorf("%q modify: %w", name, err)
		}
	}

	rawTiers, ok := m.Get("expand")
	if !ok {
		out.put(Experiment{Name: []string{name}, Tree: curr.State(), Clauses: curr.History()})
		return nil
	}

	tiers, err := grid.ParseTiers(rawTiers)
	if err != nil {
		return fmt.Errorf("%q expand: %w", name, err)
	}
	for level, tier := range tiers {
		if tier.Size() == 0 {
			logger.Warn("Expansion tier has no combinations; the branch yields no experiments.", "tier", level)
		}
	}
	logger.Debug("Expanding particular.", "tiers", len(tiers), "combinations", grid.Count(tiers))
	leaves, err := grid.Expand(tiers, curr, []string{name})
	if err != nil {
		return fmt.Errorf("%q expand: %w", name, err)
	}
	logger.Debug("Expanded particular.", "tiers", len(tiers), "leaves", len(leaves))
	for _, leaf := range leaves {
		out.put(Experiment{Name: leaf.Name, Tree: leaf.Builder.State(), Clauses: leaf.Builder.History()})
	}
	return nil
}

// deposit keeps experiments in first-seen order, keyed by composite name.
type deposit struct {
	logger *slog.Logger
	index  map[string]int
	items  []Experiment
}

func newDeposit(logger *slog.Logger) *deposit {
	return &deposit{logger: logger, index: make(map[string]int)}
}

func (d *deposit) put(e Experiment) {
	key := strings.Join(e.Name, "\x00")
	if i, ok := d.index[key]; ok {
		d.logger.Warn("Duplicate experiment name; the later definition wins.", "name", strings.Join(e.Name, "_"))
		d.items[i] = e
		return
	}
	d.index[key] = len(d.items)
	d.items = append(d.items, e)
}
