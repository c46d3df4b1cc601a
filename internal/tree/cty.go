package tree

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// ToCty converts v into a cty.Value. Mappings become objects and sequences
// become tuples, so heterogeneous children are preserved.
func ToCty(v Value) cty.Value {
	switch v.kind {
	case KindBool:
		return cty.BoolVal(v.b)
	case KindInt:
		return cty.NumberIntVal(v.i)
	case KindFloat:
		return cty.NumberFloatVal(v.f)
	case KindString:
		return cty.StringVal(v.s)
	case KindSequence:
		if v.seq.Len() == 0 {
			return cty.EmptyTupleVal
		}
		elems := make([]cty.Value, len(v.seq.items))
		for i, item := range v.seq.items {
			elems[i] = ToCty(item)
		}
		return cty.TupleVal(elems)
	case KindMapping:
		if v.m.Len() == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, v.m.Len())
		for _, k := range v.m.keys {
			attrs[k] = ToCty(v.m.vals[k])
		}
		return cty.ObjectVal(attrs)
	default:
		return cty.NullVal(cty.DynamicPseudoType)
	}
}

// FromCty converts a known cty.Value into a Value. Object and map attributes
// come out in cty's iteration order, which is sorted by name. Whole numbers
// that fit in an int64 become ints; every other number becomes a float.
func FromCty(val cty.Value) (Value, error) {
	val, _ = val.Unmark()
	if val.IsNull() {
		return Null(), nil
	}
	if !val.IsKnown() {
		return Value{}, fmt.Errorf("cannot convert unknown value of type %s", val.Type().FriendlyName())
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		return String(val.AsString()), nil
	case ty.Equals(cty.Bool):
		return Bool(val.True()), nil
	case ty.Equals(cty.Number):
		return numberFromBig(val.AsBigFloat()), nil
	case ty.IsObjectType() || ty.IsMapType():
		m := newMapping(val.LengthInt())
		it := val.ElementIterator()
		for it.Next() {
			k, ev := it.Element()
			child, err := FromCty(ev)
			if err != nil {
				return Value{}, fmt.Errorf("attribute %q: %w", k.AsString(), err)
			}
			m.put(k.AsString(), child)
		}
		return Value{kind: KindMapping, m: m}, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		seq := &Sequence{items: make([]Value, 0, val.LengthInt())}
		it := val.ElementIterator()
		for i := 0; it.Next(); i++ {
			_, ev := it.Element()
			child, err := FromCty(ev)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			seq.items = append(seq.items, child)
		}
		return Value{kind: KindSequence, seq: seq}, nil
	default:
		return Value{}, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
	}
}

func numberFromBig(bf *big.Float) Value {
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return Int(i)
		}
	}
	f, _ := bf.Float64()
	return Float(f)
}
