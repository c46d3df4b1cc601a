package tree

// Equal reports whether a and b hold the same data. Mapping key order is
// not significant, and an int equals a float of the same numeric value,
// matching how a config read back from disk compares against a derived one.
func Equal(a, b Value) bool {
	return equal(a, b, nil)
}

// EqualIgnoring is Equal, except that the listed keys are skipped when both
// roots are mappings. Nested mappings are compared in full.
func EqualIgnoring(a, b Value, ignoreKeys ...string) bool {
	if len(ignoreKeys) == 0 {
		return equal(a, b, nil)
	}
	skip := make(map[string]struct{}, len(ignoreKeys))
	for _, k := range ignoreKeys {
		skip[k] = struct{}{}
	}
	return equal(a, b, skip)
}

func equal(a, b Value, skip map[string]struct{}) bool {
	if an, ok := numeric(a); ok {
		bn, ok := numeric(b)
		return ok && an == bn
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindSequence:
		if a.seq.Len() != b.seq.Len() {
			return false
		}
		for i := range a.seq.items {
			if !equal(a.seq.items[i], b.seq.items[i], nil) {
				return false
			}
		}
		return true
	case KindMapping:
		return equalMappings(a.m, b.m, skip)
	}
	return false
}

func equalMappings(a, b *Mapping, skip map[string]struct{}) bool {
	count := func(m *Mapping) int {
		n := 0
		for _, k := range m.keys {
			if _, ok := skip[k]; !ok {
				n++
			}
		}
		return n
	}
	if count(a) != count(b) {
		return false
	}
	for _, k := range a.keys {
		if _, ok := skip[k]; ok {
			continue
		}
		bv, ok := b.vals[k]
		if !ok || !equal(a.vals[k], bv, nil) {
			return false
		}
	}
	return true
}

func numeric(v Value) (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}
