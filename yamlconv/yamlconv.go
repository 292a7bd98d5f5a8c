// Package yamlconv converts YAML documents to and from jsondoc trees,
// walking yaml.Node directly so mapping member order and duplicate keys
// survive in both directions.
package yamlconv

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	jsondoc "github.com/reoring/jsondoc"
)

// Decode converts the first YAML document in data into a tree. Aliases are
// followed to their anchors; merge keys ("<<") are kept as literal fields
// rather than expanded. Empty input decodes to a null node.
func Decode(data []byte) (*jsondoc.Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("yamlconv: decode: %w", err)
	}
	if node.Kind == 0 {
		return jsondoc.Null(), nil
	}
	v, err := fromNode(&node)
	if err != nil {
		return nil, fmt.Errorf("yamlconv: decode: %w", err)
	}
	return v, nil
}

// DecodeAll converts every document of a multi-document stream.
func DecodeAll(data []byte) ([]*jsondoc.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*jsondoc.Value
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("yamlconv: decode: %w", err)
		}
		v, err := fromNode(&node)
		if err != nil {
			return nil, fmt.Errorf("yamlconv: decode: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func fromNode(n *yaml.Node) (*jsondoc.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return jsondoc.Null(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		elems := make([]*jsondoc.Value, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, child)
		}
		return jsondoc.Array(elems...), nil
	case yaml.MappingNode:
		fields := make([]jsondoc.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, jsondoc.F(keyText(n.Content[i]), child))
		}
		return jsondoc.Object(fields...), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	}
	return nil, fmt.Errorf("unsupported node kind %d", n.Kind)
}

// keyText renders a mapping key as its scalar text; non-scalar keys come
// out as their (empty) value and are not otherwise supported.
func keyText(n *yaml.Node) string {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n.Value
}

func fromScalar(n *yaml.Node) (*jsondoc.Value, error) {
	switch n.Tag {
	case "!!null":
		return jsondoc.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", n.Value)
		}
		return jsondoc.Boolean(b), nil
	case "!!int":
		return intScalar(n.Value)
	case "!!float":
		return floatScalar(n.Value)
	case "!!binary":
		raw, err := base64.StdEncoding.DecodeString(despace(n.Value))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 payload: %w", err)
		}
		return jsondoc.Binary(raw), nil
	}
	// !!str, !!timestamp, !!merge and unresolved tags keep their text.
	return jsondoc.String(n.Value), nil
}

// intScalar mirrors the JSON number policy: negative values become integer,
// the rest unsigned, and anything past 64 bits falls back to real. Base
// prefixes (0x, 0o, 0b) follow the YAML spellings.
func intScalar(s string) (*jsondoc.Value, error) {
	t := strings.TrimPrefix(s, "+")
	if strings.HasPrefix(t, "-") {
		if i, err := strconv.ParseInt(t, 0, 64); err == nil {
			return jsondoc.Integer(i), nil
		}
	} else if u, err := strconv.ParseUint(t, 0, 64); err == nil {
		return jsondoc.Unsigned(u), nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return jsondoc.Real(f), nil
}

func floatScalar(s string) (*jsondoc.Value, error) {
	switch strings.ToLower(strings.TrimPrefix(s, "+")) {
	case ".inf":
		return jsondoc.Real(math.Inf(1)), nil
	case "-.inf":
		return jsondoc.Real(math.Inf(-1)), nil
	case ".nan":
		return jsondoc.Real(math.NaN()), nil
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float %q", s)
	}
	return jsondoc.Real(f), nil
}

// despace strips the whitespace YAML folds into long base64 scalars.
func despace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// Encode renders the tree as a YAML document, the mirror of Decode: member
// order and duplicate keys are written as stored, binary values emit the
// !!binary tag.
func Encode(v *jsondoc.Value) ([]byte, error) {
	n, err := toNode(v)
	if err != nil {
		return nil, fmt.Errorf("yamlconv: encode: %w", err)
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("yamlconv: encode: %w", err)
	}
	return out, nil
}

func toNode(v *jsondoc.Value) (*yaml.Node, error) {
	if v == nil {
		return scalarNode("!!null", "null"), nil
	}
	switch v.Kind() {
	case jsondoc.KindNull:
		return scalarNode("!!null", "null"), nil
	case jsondoc.KindBoolean:
		return scalarNode("!!bool", strconv.FormatBool(v.Bool())), nil
	case jsondoc.KindInteger:
		return scalarNode("!!int", strconv.FormatInt(v.Int(), 10)), nil
	case jsondoc.KindUnsigned:
		return scalarNode("!!int", strconv.FormatUint(v.Uint(), 10)), nil
	case jsondoc.KindReal:
		return scalarNode("!!float", formatFloat(v.Float())), nil
	case jsondoc.KindString:
		return scalarNode("!!str", v.String()), nil
	case jsondoc.KindBinary:
		return scalarNode("!!binary", base64.StdEncoding.EncodeToString(v.Bytes())), nil
	case jsondoc.KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Elements() {
			c, err := toNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	case jsondoc.KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.Fields() {
			c, err := toNode(f.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, scalarNode("!!str", f.Key), c)
		}
		return n, nil
	}
	return nil, fmt.Errorf("unsupported kind %v", v.Kind())
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// formatFloat keeps the scalar implicitly resolvable as a float so the
// emitter does not need an explicit tag.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
