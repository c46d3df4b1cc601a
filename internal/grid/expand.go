package grid

import (
	"fmt"
	"slices"

	"github.com/vk/gridsow/internal/builder"
	"github.com/vk/gridsow/internal/clause"
)

// Leaf is one fully expanded, named configuration.
type Leaf struct {
	Name    []string
	Builder *builder.Builder
}

// Count returns the number of leaves Expand would produce.
func Count(tiers []Tier) int {
	n := 1
	for _, t := range tiers {
		n *= t.Size()
	}
	return n
}

// Expand walks tiers depth first from base, returning one leaf per
// combination path. Names are prefix followed by one alias per tier. A tier
// with no combinations yields no leaves for its branch. base is not modified.
func Expand(tiers []Tier, base *builder.Builder, prefix []string) ([]Leaf, error) {
	var leaves []Leaf
	if err := expand(tiers, 0, base, slices.Clone(prefix), &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func expand(tiers []Tier, level int, b *builder.Builder, name []string, deposit *[]Leaf) error {
	if level == len(tiers) {
		*deposit = append(*deposit, Leaf{Name: name, Builder: b.Clone()})
		return nil
	}

	for _, combo := range tiers[level].Combinations {
		curr := b.Clone()
		for _, a := range combo.Assignments {
			if err := curr.Apply(clause.With(a.Path, a.Value)); err != nil {
				return fmt.Errorf("tier %d, combination %q: %w", level, combo.Name(), err)
			}
		}
		next := append(slices.Clone(name), combo.Name())
		if err := expand(tiers, level+1, curr, next, deposit); err != nil {
			return err
		}
	}
	return nil
}
