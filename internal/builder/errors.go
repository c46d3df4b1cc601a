package builder

import "fmt"

// ClauseError attaches the offending clause to a failure.
type ClauseError struct {
	Clause string
	Err    error
}

func (e *ClauseError) Error() string {
	return fmt.Sprintf("clause %q: %v", e.Clause, e.Err)
}

func (e *ClauseError) Unwrap() error {
	return e.Err
}
