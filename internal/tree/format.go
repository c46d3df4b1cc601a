package tree

import (
	"math"
	"strconv"
	"strings"
)

// String renders v in a compact flow notation, e.g. {train: {lr: 0.1}}.
// Strings inside containers are quoted; a top-level string is returned as is.
func (v Value) String() string {
	if v.kind == KindString {
		return v.s
	}
	var sb strings.Builder
	writeFlow(&sb, v)
	return sb.String()
}

// Text renders a scalar the way it would be written as a literal. It is
// what a string-typed field receives when replaced by a non-string value.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	default:
		return v.String()
	}
}

// Label renders a scalar for use in experiment names and string-typed
// fields: booleans, null and special floats take the Python spellings
// (True, False, None, inf, nan) existing run directories were named with.
// Other values render as Text.
func (v Value) Label() string {
	switch v.kind {
	case KindNull:
		return "None"
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindFloat:
		switch {
		case math.IsInf(v.f, 1):
			return "inf"
		case math.IsInf(v.f, -1):
			return "-inf"
		case math.IsNaN(v.f):
			return "nan"
		}
	}
	return v.Text()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsNaN(f):
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeFlow(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindSequence:
		sb.WriteByte('[')
		for i, item := range v.seq.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeFlow(sb, item)
		}
		sb.WriteByte(']')
	case KindMapping:
		sb.WriteByte('{')
		for i, k := range v.m.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			writeFlow(sb, v.m.vals[k])
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(v.Text())
	}
}
