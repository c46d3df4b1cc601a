package clause

import (
	"fmt"
	"strings"

	"github.com/vk/gridsow/internal/tree"
)

// Command is a parsed clause statement.
type Command struct {
	Subject string
	Verb    Verb
	Objects []string
}

// Raw is a clause split into its statement and optional argument.
type Raw struct {
	Statement string
	Arg       tree.Value
	HasArg    bool
}

// String renders the clause the way it was written.
func (r Raw) String() string {
	if !r.HasArg {
		return r.Statement
	}
	return fmt.Sprintf("%s: %s", r.Statement, r.Arg)
}

// FromValue splits a clause tree into statement and argument. A mapping
// must hold exactly one entry; a string is a statement without argument.
func FromValue(v tree.Value) (Raw, error) {
	switch v.Kind() {
	case tree.KindString:
		s, _ := v.AsString()
		return Raw{Statement: s}, nil
	case tree.KindMapping:
		m := v.Mapping()
		if m.Len() != 1 {
			return Raw{}, fmt.Errorf("%w: a clause can only have 1 statement: %d statements in %s", ErrMalformedClause, m.Len(), v)
		}
		entry := m.Entries()[0]
		return Raw{Statement: entry.Key, Arg: entry.Value, HasArg: true}, nil
	default:
		return Raw{}, fmt.Errorf("%w: expected a mapping or a string, got %s %s", ErrMalformedClause, v.Kind(), v)
	}
}

// With builds the mapping form `{statement: arg}` of a clause.
func With(statement string, arg tree.Value) Raw {
	return Raw{Statement: statement, Arg: arg, HasArg: true}
}

// Parse splits a statement into subject, verb and objects.
func Parse(statement string) (Command, error) {
	tokens := strings.Fields(statement)
	verb, index, found, err := ScanVerb(tokens)
	if err != nil {
		return Command{}, err
	}

	if !found {
		if len(tokens) > 1 {
			return Command{}, fmt.Errorf("%w: no verb present in %q", ErrSubjectCardinality, tokens)
		}
		return Command{Subject: strings.Join(tokens, ""), Verb: Replace}, nil
	}

	if index > 1 {
		return Command{}, fmt.Errorf("%w: verb %s at index %d in %q", ErrSubjectCardinality, verb, index, tokens)
	}
	cmd := Command{Subject: strings.Join(tokens[:index], ""), Verb: verb}
	if objects := tokens[index+1:]; len(objects) > 0 {
		cmd.Objects = objects
	}
	return cmd, nil
}

// FromArgs turns command-line pairs `--path value` into replace clauses.
// Values stay strings; the builder coerces them against the existing value.
func FromArgs(args []string) ([]Raw, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: clause arguments must come in --path value pairs, got %d tokens", ErrMalformedClause, len(args))
	}
	clauses := make([]Raw, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		name, ok := strings.CutPrefix(args[i], "--")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: please start clause arguments with --, got %q", ErrMalformedClause, args[i])
		}
		clauses = append(clauses, With(name, tree.String(args[i+1])))
	}
	return clauses, nil
}
