// Package tracer resolves a dotted path into a movable pointer inside a
// configuration tree.
//
// A Tracer always keeps three things in view: the full root state, the
// parent container of the addressed node together with the child token
// that selects it, and the addressed (pointed) node itself. Resolution is
// read-only; the builder writes through Set, which edits the parent in
// place so the change is visible from State.
package tracer
