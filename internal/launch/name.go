package launch

import "strings"

// JoinName turns name segments into a relative directory name. Segments
// are joined with `_`. When nestAt is non-negative, the segment at
// position nestAt+1 (counting the entry name as 0) ends with `/` instead,
// so with nestAt 0 the parts [exp1 slow lazy] become exp1_slow/lazy.
func JoinName(parts []string, nestAt int) string {
	if nestAt < 0 {
		return strings.Join(parts, "_")
	}
	nestAt++ // skip the initial lead name
	var sb strings.Builder
	for i, p := range parts {
		sb.WriteString(p)
		if i == len(parts)-1 {
			break
		}
		if i == nestAt {
			sb.WriteByte('/')
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
