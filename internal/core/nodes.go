package core

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/token"
)

// The record's mappings and sequences are decoded from the AST instead of
// through reflection. Keys keep the text they were written with, so a token
// named 50 stays "50", and every leaf must be a string scalar.

// nodeError is a shape problem found while walking the AST.
type nodeError struct {
	path  string
	theme bool // path is relative to the theme block
	tk    *token.Token
	msg   string
}

func (e *nodeError) Error() string {
	if e.tk != nil && e.tk.Position != nil {
		return fmt.Sprintf("[%d:%d] %s: %s", e.tk.Position.Line, e.tk.Position.Column, e.path, e.msg)
	}
	return e.path + ": " + e.msg
}

// paletteSet is the colors mapping: palette name to shade to color.
type paletteSet map[string]map[string]string

func (ps *paletteSet) UnmarshalYAML(node ast.Node) error {
	entries, err := mappingEntries(node, KeyColors, true)
	if err != nil {
		return err
	}

	out := make(paletteSet, len(entries))
	for _, mv := range entries {
		name, err := mappingKey(mv.Key, KeyColors, true)
		if err != nil {
			return err
		}

		shades, err := scalarMapping(mv.Value, KeyColors+"."+name, true)
		if err != nil {
			return err
		}
		out[name] = shades
	}

	*ps = out
	return nil
}

// tokenScale is a flat token to value mapping such as borderRadius.
type tokenScale map[string]string

func (ts *tokenScale) UnmarshalYAML(node ast.Node) error {
	m, err := scalarMapping(node, KeyBorderRadius, true)
	if err != nil {
		return err
	}

	*ts = m
	return nil
}

// globList and pluginList are the record's sequences of string scalars.
type (
	globList   []string
	pluginList []string
)

func (gl *globList) UnmarshalYAML(node ast.Node) error {
	out, err := scalarSequence(node, "content")
	*gl = out
	return err
}

func (pl *pluginList) UnmarshalYAML(node ast.Node) error {
	out, err := scalarSequence(node, "plugins")
	*pl = out
	return err
}

func scalarSequence(node ast.Node, path string) ([]string, error) {
	node = unwrap(node)
	switch n := node.(type) {
	case *ast.NullNode:
		return nil, nil
	case *ast.SequenceNode:
		out := make([]string, 0, len(n.Values))
		for i, v := range n.Values {
			s, err := scalarString(v, indexPath(path, i), false)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &nodeError{path: path, tk: nodeToken(node), msg: "expected a sequence, got " + kindOf(node)}
	}
}

func scalarMapping(node ast.Node, path string, theme bool) (map[string]string, error) {
	entries, err := mappingEntries(node, path, theme)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(entries))
	for _, mv := range entries {
		key, err := mappingKey(mv.Key, path, theme)
		if err != nil {
			return nil, err
		}

		value, err := scalarString(mv.Value, path+"."+key, theme)
		if err != nil {
			return nil, err
		}

		// duplicates only reach here when the parser was told to allow them
		out[key] = value
	}

	return out, nil
}

func mappingEntries(node ast.Node, path string, theme bool) ([]*ast.MappingValueNode, error) {
	node = unwrap(node)
	switch n := node.(type) {
	case *ast.NullNode:
		return nil, nil
	case *ast.MappingNode:
		return n.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}, nil
	default:
		return nil, &nodeError{path: path, theme: theme, tk: nodeToken(node), msg: "expected a mapping, got " + kindOf(node)}
	}
}

// mappingKey returns the key as written. Numeric keys keep their source text.
func mappingKey(key ast.MapKeyNode, parent string, theme bool) (string, error) {
	switch k := key.(type) {
	case *ast.StringNode:
		return k.Value, nil
	case *ast.IntegerNode, *ast.FloatNode:
		return k.GetToken().Value, nil
	default:
		return "", &nodeError{path: parent, theme: theme, tk: key.GetToken(), msg: "key must be a name, got " + kindOf(key)}
	}
}

func scalarString(node ast.Node, path string, theme bool) (string, error) {
	node = unwrap(node)
	switch n := node.(type) {
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.NullNode:
		return "", &nodeError{path: path, theme: theme, tk: nodeToken(node), msg: "value is missing (quote values starting with #)"}
	default:
		return "", &nodeError{path: path, theme: theme, tk: nodeToken(node), msg: "expected a string, got " + kindOf(node)}
	}
}

func unwrap(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.AnchorNode:
			node = n.Value
		case *ast.TagNode:
			node = n.Value
		default:
			return node
		}
	}
}

func nodeToken(node ast.Node) *token.Token {
	if node == nil {
		return nil
	}
	return node.GetToken()
}

func kindOf(node ast.Node) string {
	if node == nil {
		return "nothing"
	}
	return node.Type().YAMLName()
}
