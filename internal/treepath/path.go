// internal/treepath/path.go
package treepath

import (
	"slices"
	"strings"
)

// String serializes the Path into its dotted form.
func (p Path) String() string {
	var sb strings.Builder
	for i, token := range p {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(token.Key)
	}
	return sb.String()
}

// Equal checks two paths token by token.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}
