// internal/treepath/parser.go
package treepath

import (
	"fmt"
	"strconv"
	"strings"
)

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseToken classifies a single path token.
func ParseToken(raw string) (Token, error) {
	if !IsDigits(raw) {
		return KeyToken(raw), nil
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return Token{}, fmt.Errorf("invalid index token %q: %w", raw, err)
	}
	return Token{Key: raw, Index: index}, nil
}

// Parse splits a dotted path into tokens. The empty string parses to the
// root path. Empty segments, as in `a..b`, are kept as empty keys.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return nil, nil
	}

	segments := strings.Split(raw, ".")
	path := make(Path, 0, len(segments))
	for _, segment := range segments {
		token, err := ParseToken(segment)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", raw, err)
		}
		path = append(path, token)
	}
	return path, nil
}
