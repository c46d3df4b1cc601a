package grid

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vk/gridsow/internal/tree"
)

// AliasKey is the reserved tier key holding combination names.
const AliasKey = "alias"

// Assignment sets the value at a dotted path.
type Assignment struct {
	Path  string
	Value tree.Value
}

// Combination is one choice within a tier.
type Combination struct {
	Alias       tree.Value
	Assignments []Assignment
}

// Name renders the alias as a name segment.
func (c Combination) Name() string {
	return c.Alias.Label()
}

// Tier is one normalized expansion level.
type Tier struct {
	Combinations []Combination
}

// Size returns the number of combinations.
func (t Tier) Size() int {
	return len(t.Combinations)
}

// ParseTiers normalizes a sequence of tier descriptions.
func ParseTiers(v tree.Value) ([]Tier, error) {
	seq := v.Sequence()
	if seq == nil {
		return nil, fmt.Errorf("%w: expand must be a sequence of tiers, got %s", ErrMalformedTier, v.Kind())
	}
	tiers := make([]Tier, 0, seq.Len())
	for i, raw := range seq.Items() {
		tier, err := ParseTier(raw)
		if err != nil {
			return nil, fmt.Errorf("tier %d: %w", i, err)
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// ParseTier normalizes one tier, in either the parallel-list form or the
// list-of-records form, into its combinations.
func ParseTier(v tree.Value) (Tier, error) {
	switch v.Kind() {
	case tree.KindMapping:
		return parseParallel(v.Mapping())
	case tree.KindSequence:
		return parseRecords(v.Sequence())
	default:
		return Tier{}, fmt.Errorf("%w: a tier is a mapping of lists or a list of mappings, got %s", ErrMalformedTier, v.Kind())
	}
}

func parseParallel(m *tree.Mapping) (Tier, error) {
	if m.Len() == 0 {
		return Tier{}, fmt.Errorf("%w: empty tier", ErrMalformedTier)
	}

	lists := make(map[string][]tree.Value, m.Len())
	size := 0
	for _, e := range m.Entries() {
		seq := e.Value.Sequence()
		if seq == nil {
			return Tier{}, fmt.Errorf("%w: values for %q must be a list, got %s", ErrMalformedTier, e.Key, e.Value.Kind())
		}
		lists[e.Key] = seq.Items()
		size = max(size, seq.Len())
	}

	var paths []string
	for _, key := range m.Keys() {
		values := lists[key]
		// alias is not broadcastable; it must be full size
		if len(values) == 1 && key != AliasKey {
			values = slices.Repeat(values, size)
			lists[key] = values
		}
		if len(values) != size {
			return Tier{}, fmt.Errorf("%w: %q has %d values, expected %d", ErrTierSize, key, len(values), size)
		}
		if key != AliasKey {
			paths = append(paths, key)
		}
	}

	aliases, hasAlias := lists[AliasKey]
	tier := Tier{Combinations: make([]Combination, size)}
	for i := range size {
		combo := Combination{Alias: tree.Int(int64(i))}
		if hasAlias {
			combo.Alias = aliases[i]
		}
		for _, path := range paths {
			combo.Assignments = append(combo.Assignments, Assignment{Path: path, Value: lists[path][i]})
		}
		tier.Combinations[i] = combo
	}
	return tier, nil
}

func parseRecords(seq *tree.Sequence) (Tier, error) {
	var keys map[string]struct{}
	tier := Tier{Combinations: make([]Combination, 0, seq.Len())}

	for i, item := range seq.Items() {
		m := item.Mapping()
		if m == nil {
			return Tier{}, fmt.Errorf("%w: record %d must be a mapping, got %s", ErrMalformedTier, i, item.Kind())
		}
		recordKeys := make(map[string]struct{}, m.Len())
		for _, k := range m.Keys() {
			recordKeys[k] = struct{}{}
		}
		if keys == nil {
			keys = recordKeys
		} else if !maps.Equal(keys, recordKeys) {
			return Tier{}, fmt.Errorf("%w: record %d keys %q differ from the first record", ErrMalformedTier, i, m.Keys())
		}

		alias, ok := m.Get(AliasKey)
		if !ok {
			return Tier{}, fmt.Errorf("%w: record %d has no %q", ErrMalformedTier, i, AliasKey)
		}
		combo := Combination{Alias: alias}
		for _, e := range m.Entries() {
			if e.Key == AliasKey {
				continue
			}
			combo.Assignments = append(combo.Assignments, Assignment{Path: e.Key, Value: e.Value})
		}
		tier.Combinations = append(tier.Combinations, combo)
	}
	return tier, nil
}
