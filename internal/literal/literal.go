// Package literal turns textual clause arguments into typed tree values.
//
// Arguments use the HCL expression grammar restricted to literals: numbers,
// booleans, null, quoted strings without interpolation, tuples, objects and
// negated numbers. Arithmetic, conditionals, for expressions, references
// and function calls are rejected before anything is evaluated.
package literal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/gridsow/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrSyntax indicates text that is not a literal.
	ErrSyntax = errors.New("literal: invalid literal")
	// ErrTypeMismatch indicates a replacement whose type differs from the old value.
	ErrTypeMismatch = errors.New("literal: type mismatch")
)

// keywords accepts the spellings config files written for Python tooling use.
var keywords = map[string]tree.Value{
	"True":  tree.Bool(true),
	"False": tree.Bool(false),
	"None":  tree.Null(),
}

// Parse evaluates text as a literal.
func Parse(text string) (tree.Value, error) {
	text = strings.TrimSpace(text)
	if v, ok := keywords[text]; ok {
		return v, nil
	}
	if len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'' {
		return tree.String(text[1 : len(text)-1]), nil
	}

	expr, diags := hclsyntax.ParseExpression([]byte(text), "<literal>", hcl.InitialPos)
	if diags.HasErrors() {
		return tree.Value{}, fmt.Errorf("%w %q: %s", ErrSyntax, text, diags.Error())
	}
	v, err := fromExpr(expr, text)
	if err != nil {
		return tree.Value{}, fmt.Errorf("%w %q: %v", ErrSyntax, text, err)
	}
	return v, nil
}

// fromExpr converts a literal expression node by node. src is the parsed
// text; number spellings are read back from it since cty numbers carry no
// int/float distinction.
func fromExpr(expr hclsyntax.Expression, src string) (tree.Value, error) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() == cty.Number {
			return number(e.Val, spelling(src, e.SrcRange))
		}
		return tree.FromCty(e.Val)
	case *hclsyntax.UnaryOpExpr:
		lit, ok := e.Val.(*hclsyntax.LiteralValueExpr)
		if e.Op != hclsyntax.OpNegate || !ok || lit.Val.Type() != cty.Number {
			return tree.Value{}, fmt.Errorf("%s: only numbers can be negated", e.SrcRange)
		}
		return number(lit.Val.Negate(), "-"+spelling(src, lit.SrcRange))
	case *hclsyntax.TemplateExpr:
		var sb strings.Builder
		for _, part := range e.Parts {
			lit, ok := part.(*hclsyntax.LiteralValueExpr)
			if !ok || lit.Val.Type() != cty.String {
				return tree.Value{}, fmt.Errorf("%s: strings cannot interpolate", part.Range())
			}
			sb.WriteString(lit.Val.AsString())
		}
		return tree.String(sb.String()), nil
	case *hclsyntax.TupleConsExpr:
		items := make([]tree.Value, len(e.Exprs))
		for i, x := range e.Exprs {
			v, err := fromExpr(x, src)
			if err != nil {
				return tree.Value{}, err
			}
			items[i] = v
		}
		return tree.NewSequence(items...), nil
	case *hclsyntax.ObjectConsExpr:
		out := tree.NewMapping()
		for _, item := range e.Items {
			key, err := objectKey(item.KeyExpr, src)
			if err != nil {
				return tree.Value{}, err
			}
			v, err := fromExpr(item.ValueExpr, src)
			if err != nil {
				return tree.Value{}, err
			}
			if err := out.Mapping().Add(key, v); err != nil {
				return tree.Value{}, fmt.Errorf("%s: %w", item.KeyExpr.Range(), err)
			}
		}
		return out, nil
	case *hclsyntax.ScopeTraversalExpr:
		if v, ok := keywords[hcl.ExprAsKeyword(e)]; ok {
			return v, nil
		}
		return tree.Value{}, fmt.Errorf("%s: references are not literals", e.SrcRange)
	default:
		return tree.Value{}, fmt.Errorf("%s: not a literal", expr.Range())
	}
}

func objectKey(expr hclsyntax.Expression, src string) (string, error) {
	if kw := hcl.ExprAsKeyword(expr); kw != "" {
		return kw, nil
	}
	if wrapped, ok := expr.(*hclsyntax.ObjectConsKeyExpr); ok {
		expr = wrapped.Wrapped
	}
	key, err := fromExpr(expr, src)
	if err != nil {
		return "", err
	}
	if key.IsContainer() || key.IsNull() {
		return "", fmt.Errorf("%s: object key must be a string", expr.Range())
	}
	return key.Text(), nil
}

func spelling(src string, r hcl.Range) string {
	if r.Start.Byte < 0 || r.End.Byte > len(src) || r.Start.Byte > r.End.Byte {
		return ""
	}
	return src[r.Start.Byte:r.End.Byte]
}

// number keeps ints for integer spellings that fit in an int64; every
// other spelling becomes a float.
func number(val cty.Value, text string) (tree.Value, error) {
	v, err := tree.FromCty(val)
	if err != nil {
		return tree.Value{}, err
	}
	if v.Kind() == tree.KindInt && strings.ContainsAny(text, ".eE") {
		i, _ := v.AsInt()
		return tree.Float(float64(i)), nil
	}
	return v, nil
}

// Coerce prepares arg to replace old. A string-typed old value takes the
// argument verbatim, rendering non-strings with Label. Any other
// old value requires the argument, parsed from text when it is a string, to
// have exactly the same kind.
func Coerce(old, arg tree.Value) (tree.Value, error) {
	if old.Kind() == tree.KindString {
		if s, ok := arg.AsString(); ok {
			return tree.String(s), nil
		}
		return tree.String(arg.Label()), nil
	}

	parsed := arg
	if s, ok := arg.AsString(); ok {
		v, err := Parse(s)
		if err != nil {
			return tree.Value{}, fmt.Errorf("%w: require %s, given %q: %v", ErrTypeMismatch, old.Kind(), s, err)
		}
		parsed = v
	}
	if parsed.Kind() != old.Kind() {
		return tree.Value{}, fmt.Errorf("%w: require %s, given %s", ErrTypeMismatch, old.Kind(), parsed.Kind())
	}
	return parsed, nil
}
