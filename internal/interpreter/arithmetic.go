package interpreter

import (
	"math/big"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

const arithmeticErrorName = "ArithmeticExpressionError"

// evalArithmetic applies op to the evaluated operands. A zero divisor is
// reported before operand types are checked.
func evalArithmetic(n *ast.BinaryExpression, left, right any) (*big.Int, error) {
	if n.Operator == "/" {
		if r, ok := right.(*big.Int); ok && r.Sign() == 0 {
			return nil, arithmeticError(n, "invalid operation. Can't divide by zero")
		}
	}

	l, ok := left.(*big.Int)
	if !ok {
		return nil, arithmeticError(n, "invalid left operand. Expected a number but got %s", FormatValue(left))
	}
	r, ok := right.(*big.Int)
	if !ok {
		return nil, arithmeticError(n, "invalid right operand. Expected a number but got %s", FormatValue(right))
	}

	switch n.Operator {
	case "+":
		return new(big.Int).Add(l, r), nil
	case "-":
		return new(big.Int).Sub(l, r), nil
	case "*":
		return new(big.Int).Mul(l, r), nil
	case "/":
		return new(big.Int).Quo(l, r), nil
	default:
		return nil, arithmeticError(n, "invalid operator %s", n.Operator)
	}
}

func arithmeticError(n ast.Node, format string, args ...any) error {
	return domain.NewExpressionError(arithmeticErrorName, string(n.Type()), position(n), format, args...)
}
