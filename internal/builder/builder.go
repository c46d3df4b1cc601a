package builder

import (
	"fmt"
	"slices"

	"github.com/vk/gridsow/internal/clause"
	"github.com/vk/gridsow/internal/tracer"
	"github.com/vk/gridsow/internal/tree"
)

// Builder holds a configuration tree and applies clauses to it.
type Builder struct {
	state   tree.Value
	history []string
}

// New creates a builder over base. base is edited in place by Execute; pass
// base.Clone() when the caller keeps using the original.
func New(base tree.Value) *Builder {
	return &Builder{state: base}
}

// State returns the current tree.
func (b *Builder) State() tree.Value {
	return b.state
}

// History returns the clauses applied so far, in order.
func (b *Builder) History() []string {
	return slices.Clone(b.history)
}

// Clone returns an independent builder with a deep copy of the state.
func (b *Builder) Clone() *Builder {
	return &Builder{
		state:   b.state.Clone(),
		history: slices.Clone(b.history),
	}
}

// Execute applies a clause given in tree form: a single-entry mapping or a
// bare string.
func (b *Builder) Execute(raw tree.Value) error {
	c, err := clause.FromValue(raw)
	if err != nil {
		return &ClauseError{Clause: raw.String(), Err: err}
	}
	return b.Apply(c)
}

// ExecuteAll applies a sequence of clauses in order, stopping at the first
// failure.
func (b *Builder) ExecuteAll(clauses tree.Value) error {
	seq := clauses.Sequence()
	if seq == nil {
		return fmt.Errorf("%w: clauses must be a sequence, got %s", clause.ErrMalformedClause, clauses.Kind())
	}
	for i, raw := range seq.Items() {
		if err := b.Execute(raw); err != nil {
			return fmt.Errorf("clause %d: %w", i, err)
		}
	}
	return nil
}

// Apply runs one parsed clause against the current state.
func (b *Builder) Apply(c clause.Raw) error {
	if err := b.apply(c); err != nil {
		return &ClauseError{Clause: c.String(), Err: err}
	}
	b.history = append(b.history, c.String())
	return nil
}

func (b *Builder) apply(c clause.Raw) error {
	cmd, err := clause.Parse(c.Statement)
	if err != nil {
		return err
	}

	tr := tracer.New(b.state)
	if err := tr.Advance(cmd.Subject); err != nil {
		return err
	}

	switch cmd.Verb {
	case clause.Add:
		err = add(tr, cmd.Objects, c)
	case clause.Replace:
		err = replace(tr, cmd.Objects, c)
	case clause.Delete:
		err = remove(tr, cmd.Objects, c)
	default:
		err = fmt.Errorf("%w: unknown verb %s", clause.ErrMalformedClause, cmd.Verb)
	}
	if err != nil {
		return err
	}

	b.state = tr.State()
	return nil
}
