// internal/treepath/types.go
package treepath

import "strconv"

// Token is a single component of a path: a mapping key or a sequence index.
type Token struct {
	Key   string
	Index int // -1 indicates the token is a key.
}

// KeyToken creates a token that addresses a mapping key.
func KeyToken(key string) Token {
	return Token{Key: key, Index: -1}
}

// IndexToken creates a token that addresses a sequence index.
func IndexToken(index int) Token {
	return Token{Key: strconv.Itoa(index), Index: index}
}

// IsIndex returns true if the token addresses a sequence position.
func (t Token) IsIndex() bool {
	return t.Index != -1
}

// String returns the token as written in a path.
func (t Token) String() string {
	return t.Key
}

// Path is the parsed form of a dotted path. A nil or empty Path is the root.
type Path []Token

// IsRoot reports whether the path addresses the root value.
func (p Path) IsRoot() bool {
	return len(p) == 0
}
