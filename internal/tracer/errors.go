package tracer

import (
	"errors"
	"fmt"

	"github.com/vk/gridsow/internal/tree"
)

// ErrPathResolution indicates a path token could not be followed.
var ErrPathResolution = errors.New("tracer: path resolution failed")

// PathResolutionError reports where and why a path stopped resolving.
type PathResolutionError struct {
	Path     string
	Position int        // index of the offending token within Path
	Token    string     // the offending token
	Node     tree.Value // snapshot of the node that was being indexed
	Cause    error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("during the tracing of %q, token %d %q is not present in node %s: %v",
		e.Path, e.Position, e.Token, e.Node, e.Cause)
}

// Unwrap exposes both ErrPathResolution and the container-level cause.
func (e *PathResolutionError) Unwrap() []error {
	return []error{ErrPathResolution, e.Cause}
}
