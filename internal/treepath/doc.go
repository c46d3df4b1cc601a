// internal/treepath/doc.go

/*
Package treepath provides the structured form of the dotted paths that
clauses and expansion tiers use to address a node in a configuration tree.

The format is a dot-separated sequence of tokens, e.g. `train.optim.0.lr`.
A token made only of ASCII digits addresses a sequence index; any other
token addresses a mapping key. The empty string is the root itself.
*/
package treepath
