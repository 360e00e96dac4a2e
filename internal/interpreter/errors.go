package interpreter

import (
	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

func position(n ast.Node) *domain.Position {
	if n == nil {
		return nil
	}
	loc := n.Loc()
	if loc == nil {
		return nil
	}
	return &domain.Position{Line: loc.Start.Line, Col: loc.Start.Col}
}

// CommandError builds the error a command returns for a failure tied to c.
func CommandError(c *ast.CommandExpression, format string, args ...any) error {
	return domain.NewCommandError(c.FullName(), position(c), format, args...)
}

// HelperError builds an error for a failing helper invocation.
func HelperError(h *ast.HelperExpression, format string, args ...any) error {
	return domain.NewExpressionError("HelperFunctionError", "@"+h.Name, position(h), format, args...)
}

// ExpressionError builds an error for a failing expression node.
func ExpressionError(n ast.Node, format string, args ...any) error {
	return domain.NewExpressionError("", string(n.Type()), position(n), format, args...)
}

// withCommand attaches the command's name and location to a not-found or
// exception error that carries none yet.
func withCommand(c *ast.CommandExpression, err error) error {
	derr, ok := err.(*domain.Error)
	if !ok || derr.Node != "" || derr.Pos != nil {
		return err
	}
	cp := *derr
	cp.Node = c.FullName()
	cp.Pos = position(c)
	return &cp
}
