// Package plant decides how derived experiment trees are materialized
// against trees that already exist under the same names.
//
// # Decisions
//
// For each slot name the policy looks the name up in a Lookup:
//   - **Create:** nothing is stored yet; the tree is written.
//   - **DuplicateIdentical:** the stored tree equals the derived one, ignoring
//     metadata keys at the root (default `__meta__`). Written only when
//     Overwrite is set.
//   - **DuplicateConflicting:** the stored tree differs. With Overwrite the
//     derived tree replaces it; otherwise the stored tree is kept.
//
// When Repeat is positive the same tree is planted under the numbered slots
// `name/00`, `name/01`, ... and each slot is decided on its own.
//
// The package performs no IO itself. Corpus implementations live in
// internal/inmemorycorpus and internal/dircorpus.
package plant
