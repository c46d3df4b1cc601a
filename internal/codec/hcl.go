package codec

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/gridsow/internal/tree"
)

// DecodeHCL parses an HCL file made of top-level attributes. Attributes and
// object items keep their source order. Blocks, variables and function
// calls are rejected.
func DecodeHCL(data []byte, filename string) (tree.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return tree.Value{}, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrDecode, filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return tree.Value{}, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrDecode, filename, diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, a := range attrs {
		ordered = append(ordered, a)
	}
	slices.SortFunc(ordered, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	out := tree.NewMapping()
	for _, a := range ordered {
		v, err := FromExpression(a.Expr)
		if err != nil {
			return tree.Value{}, fmt.Errorf("%w: %s: attribute %q: %w", ErrDecode, a.Range, a.Name, err)
		}
		out.Mapping().Set(a.Name, v)
	}
	return out, nil
}

// FromExpression evaluates expr without any variables or functions. Object
// constructors and tuples are walked item by item to preserve their order.
func FromExpression(expr hcl.Expression) (tree.Value, error) {
	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		out := tree.NewMapping()
		for _, item := range e.Items {
			kv, diags := item.KeyExpr.Value(nil)
			if diags.HasErrors() {
				return tree.Value{}, diags
			}
			key, err := tree.FromCty(kv)
			if err != nil {
				return tree.Value{}, err
			}
			if key.IsContainer() || key.IsNull() {
				return tree.Value{}, fmt.Errorf("%s: object key must be a string", item.KeyExpr.Range())
			}
			v, err := FromExpression(item.ValueExpr)
			if err != nil {
				return tree.Value{}, err
			}
			if err := out.Mapping().Add(key.Text(), v); err != nil {
				return tree.Value{}, fmt.Errorf("%s: %w", item.KeyExpr.Range(), err)
			}
		}
		return out, nil
	case *hclsyntax.TupleConsExpr:
		items := make([]tree.Value, len(e.Exprs))
		for i, x := range e.Exprs {
			v, err := FromExpression(x)
			if err != nil {
				return tree.Value{}, err
			}
			items[i] = v
		}
		return tree.NewSequence(items...), nil
	default:
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return tree.Value{}, diags
		}
		return tree.FromCty(val)
	}
}

// EncodeHCL renders a mapping as HCL attributes. Every root key must be a
// valid HCL identifier.
func EncodeHCL(v tree.Value) ([]byte, error) {
	m := v.Mapping()
	if m == nil {
		return nil, fmt.Errorf("%w: HCL needs a mapping at the root, got %s", ErrEncode, v.Kind())
	}
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, e := range m.Entries() {
		if !hclsyntax.ValidIdentifier(e.Key) {
			return nil, fmt.Errorf("%w: %q is not a valid HCL attribute name", ErrEncode, e.Key)
		}
		body.SetAttributeRaw(e.Key, valueTokens(e.Value))
	}
	return hclwrite.Format(f.Bytes()), nil
}

// valueTokens renders v with object items in tree order; cty objects
// would sort them.
func valueTokens(v tree.Value) hclwrite.Tokens {
	switch v.Kind() {
	case tree.KindMapping:
		attrs := make([]hclwrite.ObjectAttrTokens, 0, v.Mapping().Len())
		for _, e := range v.Mapping().Entries() {
			var name hclwrite.Tokens
			if hclsyntax.ValidIdentifier(e.Key) {
				name = hclwrite.TokensForIdentifier(e.Key)
			} else {
				name = hclwrite.TokensForValue(tree.ToCty(tree.String(e.Key)))
			}
			attrs = append(attrs, hclwrite.ObjectAttrTokens{Name: name, Value: valueTokens(e.Value)})
		}
		return hclwrite.TokensForObject(attrs)
	case tree.KindSequence:
		items := v.Sequence().Items()
		elems := make([]hclwrite.Tokens, len(items))
		for i, item := range items {
			elems[i] = valueTokens(item)
		}
		return hclwrite.TokensForTuple(elems)
	default:
		return hclwrite.TokensForValue(tree.ToCty(v))
	}
}
