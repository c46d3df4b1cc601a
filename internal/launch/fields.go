package launch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vk/gridsow/internal/tree"
)

// ErrFieldSpec indicates a description or entry with missing, conflicting
// or unknown fields.
var ErrFieldSpec = errors.New("launch: field spec violation")

// FieldSpec lists the fields a mapping may carry. Required fields must be
// present and truthy. When Either is non-empty exactly one of its fields
// must be present, and it must be truthy. Any other field is rejected.
type FieldSpec struct {
	Required []string
	Optional []string
	Either   []string
}

var (
	// DescriptionFields governs the top level of a launch description.
	DescriptionFields = FieldSpec{
		Required: []string{"particular"},
		Optional: []string{"base_modify", "desc", "group"},
		Either:   []string{"import_base", "base"},
	}
	// ParticularFields governs each entry of `particular`.
	ParticularFields = FieldSpec{
		Required: []string{"name"},
		Optional: []string{"modify", "expand"},
	}
)

// All returns every allowed field.
func (s FieldSpec) All() []string {
	return slices.Concat(s.Required, s.Optional, s.Either)
}

// Validate checks v against the listed fields.
func (s FieldSpec) Validate(v tree.Value) error {
	m := v.Mapping()
	if m == nil {
		return fmt.Errorf("%w: expected a mapping, got %s", ErrFieldSpec, v.Kind())
	}

	for _, k := range s.Required {
		if val, ok := m.Get(k); !ok || !val.Truthy() {
			return fmt.Errorf("%w: field %q is required and must be truthy, given %q", ErrFieldSpec, k, m.Keys())
		}
	}

	if len(s.Either) > 0 {
		var present []string
		for _, k := range s.Either {
			if m.Has(k) {
				present = append(present, k)
			}
		}
		if len(present) != 1 {
			return fmt.Errorf("%w: exactly one of %q is required, given %q", ErrFieldSpec, s.Either, m.Keys())
		}
		if val, _ := m.Get(present[0]); !val.Truthy() {
			return fmt.Errorf("%w: field %q must be truthy", ErrFieldSpec, present[0])
		}
	}

	all := s.All()
	for _, k := range m.Keys() {
		if !slices.Contains(all, k) {
			return fmt.Errorf("%w: field %q is not allowed among %q", ErrFieldSpec, k, all)
		}
	}
	return nil
}
