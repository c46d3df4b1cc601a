package clause

import "errors"

var (
	// ErrMalformedClause indicates a clause of the wrong shape.
	ErrMalformedClause = errors.New("clause: malformed clause")
	// ErrAmbiguousVerb indicates more than one verb, or a repeated verb.
	ErrAmbiguousVerb = errors.New("clause: ambiguous verb")
	// ErrSubjectCardinality indicates more than one subject token.
	ErrSubjectCardinality = errors.New("clause: more than 1 subject")
)
