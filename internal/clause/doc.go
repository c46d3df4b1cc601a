// Package clause parses mutation clauses.
//
// A clause is either a single-entry mapping `{statement: argument}` or a
// bare string statement with no argument. The statement splits on
// whitespace into an optional subject path, at most one verb (`add`,
// `replace` or `del`) and trailing object tokens:
//
//	statement       subject  verb     objects
//	""              ""       replace  []
//	"a.b"           "a.b"    replace  []
//	"add"           ""       add      []
//	"T add"         "T"      add      []
//	"T del a b"     "T"      del      [a b]
//	"P Q"           error: more than 1 subject
//	"P add del b"   error: multiple verbs
//
// Without a verb the clause means "replace the value at this path".
package clause
