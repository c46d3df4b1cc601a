// Package grid performs the cartesian expansion of a configuration into
// named variants.
//
// An expansion is an ordered list of tiers. Each tier offers N
// combinations, each with an alias and a set of path → value assignments.
// Expand walks the tiers depth first: for every combination of the current
// tier it clones the builder, applies the assignments as replace clauses
// and descends into the next tier with the alias appended to the name.
// Leaves come out in declaration order and never share tree state.
//
// A tier is written either as a mapping of parallel lists
//
//	alias:    [slow, medium, fast]
//	train.lr: [0.5, 0.6, 0.7]
//	train.wd: [0.0]            # length 1 broadcasts to 3
//
// or as a list of records sharing one key set
//
//	- {alias: small, model.width: 64}
//	- {alias: large, model.width: 512}
//
// Without an alias, combinations are named by their index.
package grid
