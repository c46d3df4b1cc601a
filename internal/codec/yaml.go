package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/vk/gridsow/internal/tree"
	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// DecodeYAML parses the first YAML document in data. JSON is accepted as a
// subset. An empty document decodes to null.
func DecodeYAML(data []byte) (tree.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return tree.Value{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return tree.Null(), nil
	}
	return fromNode(doc.Content[0])
}

func fromNode(n *yaml.Node) (tree.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return tree.Null(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		items := make([]tree.Value, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return tree.Value{}, err
			}
			items[i] = v
		}
		return tree.NewSequence(items...), nil
	case yaml.MappingNode:
		return fromMapping(n)
	default:
		return tree.Value{}, fmt.Errorf("%w: unsupported node kind %d at line %d", ErrDecode, n.Kind, n.Line)
	}
}

func fromMapping(n *yaml.Node) (tree.Value, error) {
	out := tree.NewMapping()
	m := out.Mapping()
	var merged []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() == mergeTag {
			merged = append(merged, v)
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return tree.Value{}, fmt.Errorf("%w: line %d: mapping keys must be scalars", ErrDecode, k.Line)
		}
		child, err := fromNode(v)
		if err != nil {
			return tree.Value{}, err
		}
		if err := m.Add(k.Value, child); err != nil {
			return tree.Value{}, fmt.Errorf("%w: line %d: %v", ErrDecode, k.Line, err)
		}
	}

	// Explicit keys win over merged ones.
	for _, src := range merged {
		if src.Kind == yaml.AliasNode {
			src = src.Alias
		}
		var sources []*yaml.Node
		switch src.Kind {
		case yaml.MappingNode:
			sources = []*yaml.Node{src}
		case yaml.SequenceNode:
			sources = src.Content
		default:
			return tree.Value{}, fmt.Errorf("%w: line %d: merge value must be a mapping", ErrDecode, src.Line)
		}
		for _, s := range sources {
			v, err := fromNode(s)
			if err != nil {
				return tree.Value{}, err
			}
			sm := v.Mapping()
			if sm == nil {
				return tree.Value{}, fmt.Errorf("%w: line %d: merge value must be a mapping", ErrDecode, s.Line)
			}
			for _, e := range sm.Entries() {
				if !m.Has(e.Key) {
					m.Set(e.Key, e.Value)
				}
			}
		}
	}
	return out, nil
}

func fromScalar(n *yaml.Node) (tree.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return tree.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return tree.Value{}, fmt.Errorf("%w: line %d: %v", ErrDecode, n.Line, err)
		}
		return tree.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return tree.Int(i), nil
		}
		// Out of the int64 range.
		var f float64
		if err := n.Decode(&f); err != nil {
			return tree.Value{}, fmt.Errorf("%w: line %d: %v", ErrDecode, n.Line, err)
		}
		return tree.Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return tree.Value{}, fmt.Errorf("%w: line %d: %v", ErrDecode, n.Line, err)
		}
		return tree.Float(f), nil
	default:
		return tree.String(n.Value), nil
	}
}

// EncodeYAML renders v as a block-style YAML document, keys in tree order.
func EncodeYAML(v tree.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toNode(v)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func toNode(v tree.Value) *yaml.Node {
	switch v.Kind() {
	case tree.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case tree.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case tree.KindInt:
		i, _ := v.AsInt()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}
	case tree.KindFloat:
		f, _ := v.AsFloat()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloat(f)}
	case tree.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case tree.KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Sequence().Items() {
			n.Content = append(n.Content, toNode(item))
		}
		return n
	default:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v.Mapping().Entries() {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
				toNode(e.Value),
			)
		}
		return n
	}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	return tree.Float(f).Text()
}
