// Package ast defines the node model produced by the script parser and
// consumed by the interpreter. Nodes are immutable once built.
package ast

import "fmt"

// NodeType identifies the concrete type of a node.
type NodeType string

const (
	ProgramNode           NodeType = "Program"
	CommandExpressionNode NodeType = "CommandExpression"
	BlockExpressionNode   NodeType = "BlockExpression"
	HelperExpressionNode  NodeType = "HelperFunctionExpression"
	BinaryExpressionNode  NodeType = "BinaryExpression"
	AsExpressionNode      NodeType = "AsExpression"
	IdentifierNode        NodeType = "Identifier"
	NumberLiteralNode     NodeType = "NumberLiteral"
	StringLiteralNode     NodeType = "StringLiteral"
	AddressLiteralNode    NodeType = "AddressLiteral"
	BytesLiteralNode      NodeType = "BytesLiteral"
	BoolLiteralNode       NodeType = "BoolLiteral"
)

// Position is a 1-based line/column pair.
type Position struct {
	Line int `json:"line" yaml:"line"`
	Col  int `json:"col" yaml:"col"`
}

// Location is the source range a node was parsed from.
type Location struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

func (l *Location) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d", l.Start.Line, l.Start.Col)
}

// Node is implemented by every AST node.
type Node interface {
	Type() NodeType
	Loc() *Location
}

// Program is the root node: an ordered list of statements.
type Program struct {
	Body     []*CommandExpression
	Location *Location
}

func (n *Program) Type() NodeType { return ProgramNode }
func (n *Program) Loc() *Location { return n.Location }

// CommandOpt is a named option attached to a command (`--name value`).
type CommandOpt struct {
	Name  string
	Value Node
}

// CommandExpression invokes a module command. Module holds the explicit
// alias prefix (`ar:install`) and is empty when none was written.
type CommandExpression struct {
	Module   string
	Name     string
	Args     []Node
	Opts     []*CommandOpt
	Location *Location
}

func (n *CommandExpression) Type() NodeType { return CommandExpressionNode }
func (n *CommandExpression) Loc() *Location { return n.Location }

// FullName returns the command name including its module prefix, if any.
func (n *CommandExpression) FullName() string {
	if n.Module == "" {
		return n.Name
	}
	return n.Module + ":" + n.Name
}

// Opt returns the option with the given name.
func (n *CommandExpression) Opt(name string) (*CommandOpt, bool) {
	for _, o := range n.Opts {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// BlockExpression is a parenthesised list of statements evaluated in a
// child scope.
type BlockExpression struct {
	Body     []*CommandExpression
	Location *Location
}

func (n *BlockExpression) Type() NodeType { return BlockExpressionNode }
func (n *BlockExpression) Loc() *Location { return n.Location }

// HelperExpression invokes a helper (`@name(args...)`) and yields a value.
type HelperExpression struct {
	Name     string
	Args     []Node
	Location *Location
}

func (n *HelperExpression) Type() NodeType { return HelperExpressionNode }
func (n *HelperExpression) Loc() *Location { return n.Location }

// BinaryExpression is an arithmetic operation. Precedence is already encoded
// in the tree shape.
type BinaryExpression struct {
	Operator string
	Left     Node
	Right    Node
	Location *Location
}

func (n *BinaryExpression) Type() NodeType { return BinaryExpressionNode }
func (n *BinaryExpression) Loc() *Location { return n.Location }

// AsExpression aliases its left side: `aragonos as ar`.
type AsExpression struct {
	Left     Node
	Right    Node
	Location *Location
}

func (n *AsExpression) Type() NodeType { return AsExpressionNode }
func (n *AsExpression) Loc() *Location { return n.Location }

// Identifier references a binding. Names starting with `$` are user
// variables; anything else is looked up as an address alias.
type Identifier struct {
	Value    string
	Location *Location
}

func (n *Identifier) Type() NodeType { return IdentifierNode }
func (n *Identifier) Loc() *Location { return n.Location }

// IsVariable reports whether the identifier names a user variable.
func (n *Identifier) IsVariable() bool {
	return len(n.Value) > 0 && n.Value[0] == '$'
}

// NumberLiteral keeps the raw numeric text (`1.5e18`, `7d`) so it can be
// scaled exactly by the interpreter.
type NumberLiteral struct {
	Value    string
	Location *Location
}

func (n *NumberLiteral) Type() NodeType { return NumberLiteralNode }
func (n *NumberLiteral) Loc() *Location { return n.Location }

type StringLiteral struct {
	Value    string
	Location *Location
}

func (n *StringLiteral) Type() NodeType { return StringLiteralNode }
func (n *StringLiteral) Loc() *Location { return n.Location }

type AddressLiteral struct {
	Value    string
	Location *Location
}

func (n *AddressLiteral) Type() NodeType { return AddressLiteralNode }
func (n *AddressLiteral) Loc() *Location { return n.Location }

type BytesLiteral struct {
	Value    string
	Location *Location
}

func (n *BytesLiteral) Type() NodeType { return BytesLiteralNode }
func (n *BytesLiteral) Loc() *Location { return n.Location }

type BoolLiteral struct {
	Value    bool
	Location *Location
}

func (n *BoolLiteral) Type() NodeType { return BoolLiteralNode }
func (n *BoolLiteral) Loc() *Location { return n.Location }
