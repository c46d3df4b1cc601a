package tree

import "fmt"

// Kind is the runtime tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

var kindNames = map[Kind]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a single node of a configuration tree. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  *Sequence
	m    *Mapping
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// NewSequence returns a sequence value holding the given items in order.
func NewSequence(items ...Value) Value {
	seq := &Sequence{items: make([]Value, 0, len(items))}
	seq.items = append(seq.items, items...)
	return Value{kind: KindSequence, seq: seq}
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value Value
}

// E is shorthand for constructing an Entry.
func E(key string, v Value) Entry { return Entry{Key: key, Value: v} }

// NewMapping returns a mapping value holding the given entries in order.
// A repeated key keeps its first position and its last value.
func NewMapping(entries ...Entry) Value {
	m := newMapping(len(entries))
	for _, e := range entries {
		m.put(e.Key, e.Value)
	}
	return Value{kind: KindMapping, m: m}
}

// Kind reports the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsContainer reports whether the value is a sequence or a mapping.
func (v Value) IsContainer() bool {
	return v.kind == KindSequence || v.kind == KindMapping
}

// AsBool returns the boolean payload. ok is false for other kinds.
func (v Value) AsBool() (b bool, ok bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload. ok is false for other kinds.
func (v Value) AsInt() (i int64, ok bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload. ok is false for other kinds.
func (v Value) AsFloat() (f float64, ok bool) { return v.f, v.kind == KindFloat }

// AsString returns the string payload. ok is false for other kinds.
func (v Value) AsString() (s string, ok bool) { return v.s, v.kind == KindString }

// Sequence returns the underlying sequence, or nil when v is not a sequence.
func (v Value) Sequence() *Sequence { return v.seq }

// Mapping returns the underlying mapping, or nil when v is not a mapping.
func (v Value) Mapping() *Mapping { return v.m }

// Len returns the number of children of a container.
func (v Value) Len() (int, error) {
	switch v.kind {
	case KindSequence:
		return v.seq.Len(), nil
	case KindMapping:
		return v.m.Len(), nil
	default:
		return 0, fmt.Errorf("%w: %s has no length", ErrContainerKind, v.kind)
	}
}

// Truthy follows the usual configuration convention: null, false, zero,
// the empty string and empty containers are false; everything else is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != ""
	case KindSequence:
		return v.seq.Len() > 0
	case KindMapping:
		return v.m.Len() > 0
	default:
		return false
	}
}

// Clone returns a deep copy of v sharing no containers with it.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.seq.items))
		for i, item := range v.seq.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, seq: &Sequence{items: items}}
	case KindMapping:
		m := newMapping(v.m.Len())
		for _, k := range v.m.keys {
			m.put(k, v.m.vals[k].Clone())
		}
		return Value{kind: KindMapping, m: m}
	default:
		return v
	}
}
