package testutil

import "github.com/lobintsev/evmcrispr/internal/domain/ast"

// Node builders keep test programs readable.

func Program(body ...*ast.CommandExpression) *ast.Program {
	return &ast.Program{Body: body}
}

// Cmd builds a command. name may carry a module prefix (`ar:install`).
func Cmd(name string, args ...ast.Node) *ast.CommandExpression {
	c := &ast.CommandExpression{Name: name, Args: args}
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			c.Module, c.Name = name[:i], name[i+1:]
			break
		}
	}
	return c
}

// WithOpt appends an option to c and returns it.
func WithOpt(c *ast.CommandExpression, name string, value ast.Node) *ast.CommandExpression {
	c.Opts = append(c.Opts, &ast.CommandOpt{Name: name, Value: value})
	return c
}

func Block(body ...*ast.CommandExpression) *ast.BlockExpression {
	return &ast.BlockExpression{Body: body}
}

func Ident(v string) *ast.Identifier { return &ast.Identifier{Value: v} }

func Num(v string) *ast.NumberLiteral { return &ast.NumberLiteral{Value: v} }

func Str(v string) *ast.StringLiteral { return &ast.StringLiteral{Value: v} }

func Addr(v string) *ast.AddressLiteral { return &ast.AddressLiteral{Value: v} }

func Bytes(v string) *ast.BytesLiteral { return &ast.BytesLiteral{Value: v} }

func Bool(v bool) *ast.BoolLiteral { return &ast.BoolLiteral{Value: v} }

func Bin(op string, left, right ast.Node) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: op, Left: left, Right: right}
}

func As(left, right ast.Node) *ast.AsExpression {
	return &ast.AsExpression{Left: left, Right: right}
}

func Helper(name string, args ...ast.Node) *ast.HelperExpression {
	return &ast.HelperExpression{Name: name, Args: args}
}
