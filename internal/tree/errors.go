package tree

import "errors"

var (
	// ErrContainerKind indicates an operation applied to the wrong kind of node,
	// e.g. indexing into a scalar or inserting by key into a sequence.
	ErrContainerKind = errors.New("tree: wrong container kind")
	// ErrDuplicateKey indicates an attempt to add a key that is already present.
	ErrDuplicateKey = errors.New("tree: key already present")
	// ErrMissingKey indicates a lookup or delete of a key that is not present.
	ErrMissingKey = errors.New("tree: key not present")
	// ErrIndexRange indicates a sequence index outside the valid range.
	ErrIndexRange = errors.New("tree: index out of range")
)
