// Package scriptfile loads scripts stored as AST documents (YAML or JSON).
//
// A document has a top-level "body" list of commands:
//
//	body:
//	  - command: connect
//	    args:
//	      - identifier: my-dao
//	      - block:
//	          - command: install
//	            args: [{identifier: "vault:new"}]
//	    opts:
//	      context: "install a vault"
//
// Scalars are shorthands: 0x-prefixed values become address (20 bytes) or
// bytes literals, numbers become number literals, booleans bool literals and
// anything else a string literal. Every other node is a single-key
// mapping naming its type (identifier, number, string, address, bytes, bool,
// helper, binary, as, block).
package scriptfile

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

// Loader reads AST documents from disk
type Loader struct{}

// NewLoader creates a new script loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the document at path
func (l *Loader) Load(ctx context.Context, path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes an AST document
func Parse(data []byte) (*ast.Program, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode script document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return &ast.Program{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "script document must be a mapping with a body")
	}

	program := &ast.Program{Location: location(root)}
	body, ok := mappingValue(root, "body")
	if !ok {
		return program, nil
	}
	cmds, err := decodeCommands(body)
	if err != nil {
		return nil, err
	}
	program.Body = cmds
	return program, nil
}

func decodeCommands(n *yaml.Node) ([]*ast.CommandExpression, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, nodeError(n, "expected a list of commands")
	}
	cmds := make([]*ast.CommandExpression, 0, len(n.Content))
	for _, item := range n.Content {
		c, err := decodeCommand(item)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func decodeCommand(n *yaml.Node) (*ast.CommandExpression, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "expected a command mapping")
	}

	c := &ast.CommandExpression{Location: location(n)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "command":
			c.Name = value.Value
		case "module":
			c.Module = value.Value
		case "args":
			if value.Kind != yaml.SequenceNode {
				return nil, nodeError(value, "command args must be a list")
			}
			for _, arg := range value.Content {
				node, err := decodeNode(arg)
				if err != nil {
					return nil, err
				}
				c.Args = append(c.Args, node)
			}
		case "opts":
			if value.Kind != yaml.MappingNode {
				return nil, nodeError(value, "command opts must be a mapping")
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				node, err := decodeNode(value.Content[j+1])
				if err != nil {
					return nil, err
				}
				c.Opts = append(c.Opts, &ast.CommandOpt{Name: value.Content[j].Value, Value: node})
			}
		case "line", "col":
		default:
			return nil, nodeError(key, "unknown command field %q", key.Value)
		}
	}
	if c.Name == "" {
		return nil, nodeError(n, "command name missing")
	}
	applyExplicitLocation(n, c.Location)
	return c, nil
}

func decodeNode(n *yaml.Node) (ast.Node, error) {
	loc := location(n)

	switch n.Kind {
	case yaml.ScalarNode:
		if strings.HasPrefix(n.Value, "0x") {
			if common.IsHexAddress(n.Value) && len(n.Value) == 42 {
				return &ast.AddressLiteral{Value: n.Value, Location: loc}, nil
			}
			return &ast.BytesLiteral{Value: n.Value, Location: loc}, nil
		}
		switch n.Tag {
		case "!!int", "!!float":
			return &ast.NumberLiteral{Value: n.Value, Location: loc}, nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return nil, nodeError(n, "invalid bool %q", n.Value)
			}
			return &ast.BoolLiteral{Value: b, Location: loc}, nil
		default:
			return &ast.StringLiteral{Value: n.Value, Location: loc}, nil
		}
	case yaml.MappingNode:
	default:
		return nil, nodeError(n, "unexpected node")
	}

	kind, value, err := nodeKind(n)
	if err != nil {
		return nil, err
	}
	applyExplicitLocation(n, loc)

	switch kind {
	case "identifier":
		return &ast.Identifier{Value: value.Value, Location: loc}, nil
	case "number":
		return &ast.NumberLiteral{Value: value.Value, Location: loc}, nil
	case "string":
		return &ast.StringLiteral{Value: value.Value, Location: loc}, nil
	case "address":
		return &ast.AddressLiteral{Value: value.Value, Location: loc}, nil
	case "bytes":
		return &ast.BytesLiteral{Value: value.Value, Location: loc}, nil
	case "bool":
		b, err := strconv.ParseBool(value.Value)
		if err != nil {
			return nil, nodeError(value, "invalid bool %q", value.Value)
		}
		return &ast.BoolLiteral{Value: b, Location: loc}, nil
	case "block":
		body, err := decodeCommands(value)
		if err != nil {
			return nil, err
		}
		return &ast.BlockExpression{Body: body, Location: loc}, nil
	case "helper":
		return decodeHelper(value, loc)
	case "binary":
		return decodeBinary(value, loc)
	case "as":
		left, right, err := decodeOperands(value)
		if err != nil {
			return nil, err
		}
		return &ast.AsExpression{Left: left, Right: right, Location: loc}, nil
	}
	return nil, nodeError(n, "unknown node type %q", kind)
}

func decodeHelper(n *yaml.Node, loc *ast.Location) (ast.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "helper must be a mapping")
	}
	h := &ast.HelperExpression{Location: loc}
	if name, ok := mappingValue(n, "name"); ok {
		h.Name = name.Value
	}
	if h.Name == "" {
		return nil, nodeError(n, "helper name missing")
	}
	if args, ok := mappingValue(n, "args"); ok {
		if args.Kind != yaml.SequenceNode {
			return nil, nodeError(args, "helper args must be a list")
		}
		for _, arg := range args.Content {
			node, err := decodeNode(arg)
			if err != nil {
				return nil, err
			}
			h.Args = append(h.Args, node)
		}
	}
	return h, nil
}

func decodeBinary(n *yaml.Node, loc *ast.Location) (ast.Node, error) {
	op, ok := mappingValue(n, "op")
	if !ok {
		return nil, nodeError(n, "binary expression operator missing")
	}
	switch op.Value {
	case "+", "-", "*", "/":
	default:
		return nil, nodeError(op, "unknown operator %q", op.Value)
	}
	left, right, err := decodeOperands(n)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Operator: op.Value, Left: left, Right: right, Location: loc}, nil
}

func decodeOperands(n *yaml.Node) (ast.Node, ast.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nil, nodeError(n, "expected left and right operands")
	}
	l, ok := mappingValue(n, "left")
	if !ok {
		return nil, nil, nodeError(n, "left operand missing")
	}
	r, ok := mappingValue(n, "right")
	if !ok {
		return nil, nil, nodeError(n, "right operand missing")
	}
	left, err := decodeNode(l)
	if err != nil {
		return nil, nil, err
	}
	right, err := decodeNode(r)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// nodeKind returns the type key of a node mapping, ignoring location keys.
func nodeKind(n *yaml.Node) (string, *yaml.Node, error) {
	var (
		kind  string
		value *yaml.Node
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if key == "line" || key == "col" {
			continue
		}
		if kind != "" {
			return "", nil, nodeError(n, "node has more than one type: %s, %s", kind, key)
		}
		kind, value = key, n.Content[i+1]
	}
	if kind == "" {
		return "", nil, nodeError(n, "node type missing")
	}
	return kind, value, nil
}

func mappingValue(n *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1], true
		}
	}
	return nil, false
}

func location(n *yaml.Node) *ast.Location {
	pos := ast.Position{Line: n.Line, Col: n.Column}
	return &ast.Location{Start: pos, End: pos}
}

// applyExplicitLocation overrides the document position with line/col keys,
// used by documents exported from the text parser.
func applyExplicitLocation(n *yaml.Node, loc *ast.Location) {
	if n.Kind != yaml.MappingNode {
		return
	}
	if v, ok := mappingValue(n, "line"); ok {
		if line, err := strconv.Atoi(v.Value); err == nil {
			loc.Start.Line, loc.End.Line = line, line
		}
	}
	if v, ok := mappingValue(n, "col"); ok {
		if col, err := strconv.Atoi(v.Value); err == nil {
			loc.Start.Col, loc.End.Col = col, col
		}
	}
}

func nodeError(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d, col %d: %s", n.Line, n.Column, fmt.Sprintf(format, args...))
}
