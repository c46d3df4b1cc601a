package clause

import (
	"fmt"
	"slices"
)

// Verb is the operation a clause performs.
type Verb int

const (
	Replace Verb = iota
	Add
	Delete
)

// verbTokens lists the reserved tokens in scan order.
var verbTokens = [...]struct {
	verb  Verb
	token string
}{
	{Add, "add"},
	{Replace, "replace"},
	{Delete, "del"},
}

// String returns the surface token of the verb.
func (v Verb) String() string {
	for _, vt := range verbTokens {
		if vt.verb == v {
			return vt.token
		}
	}
	return fmt.Sprintf("verb(%d)", int(v))
}

// ParseVerb maps a surface token to its Verb.
func ParseVerb(token string) (Verb, bool) {
	for _, vt := range verbTokens {
		if vt.token == token {
			return vt.verb, true
		}
	}
	return 0, false
}

// ScanVerb locates the single verb in a token list. found is false when no
// reserved token is present. More than one distinct verb, or one verb
// appearing twice, is ErrAmbiguousVerb.
func ScanVerb(tokens []string) (verb Verb, index int, found bool, err error) {
	var counts [len(verbTokens)]int
	distinct, repeated := 0, false
	for i, vt := range verbTokens {
		for _, tok := range tokens {
			if tok == vt.token {
				counts[i]++
			}
		}
		if counts[i] > 0 {
			distinct++
		}
		if counts[i] > 1 {
			repeated = true
		}
	}

	switch {
	case distinct == 0:
		return 0, -1, false, nil
	case distinct > 1:
		return 0, -1, false, fmt.Errorf("%w: multiple verbs discovered in %q", ErrAmbiguousVerb, tokens)
	case repeated:
		return 0, -1, false, fmt.Errorf("%w: verbs repeated in %q", ErrAmbiguousVerb, tokens)
	}

	for i, vt := range verbTokens {
		if counts[i] == 1 {
			return vt.verb, slices.Index(tokens, vt.token), true, nil
		}
	}
	return 0, -1, false, nil
}
