/*
Package tree defines the configuration tree that every other part of the
engine reads and edits.

A Value is a tagged union over the closed set of kinds a configuration can
hold: null, bool, int, float, string, an ordered Sequence, or a Mapping from
string keys to values that remembers insertion order. Containers are held
by pointer, so a Value copied out of a tree still refers to the same
underlying container; use Clone to obtain a fully independent copy before
branching.

Container operations (Get, Set, Insert, Delete, Len) are implemented per
variant and report violations through the sentinel errors in errors.go.
*/
package tree
