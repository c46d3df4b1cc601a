// Package builder applies mutation clauses to a configuration tree.
//
// # Why Builder Exists
//
// A launch description derives many experiment configs from one base. Each
// derivation is a short list of clauses (`train.lr: 0.5`, `model add head: {...}`,
// `del dropout`) applied in order. The builder owns the tree being edited and
// is the only place those clauses are interpreted.
//
// # Responsibilities
//
//   - **Parsing:** splitting a clause into statement and argument (package clause)
//   - **Addressing:** resolving the subject path with a tracer
//   - **Dispatch:** running add, replace or delete against the addressed node
//   - **Coercion:** checking replace arguments against the old value's type (package literal)
//   - **Branching:** Clone returns an independent builder for each variant
//
// # Failure Model
//
// A failing clause returns an error wrapping one of the sentinel errors of
// packages clause, tracer, tree or literal. Edits are made in place and are
// not rolled back, so a builder whose Execute failed must be discarded; take
// a Clone before the clause if the caller wants to retry.
//
// A Builder is not safe for concurrent use. Parallel branches each need
// their own Clone.
package builder
