package std

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// id returns keccak256 of its text argument.
func (m *Std) id() interpreter.Helper {
	return interpreter.Helper{
		Run: func(ctx context.Context, h *ast.HelperExpression, ev interpreter.Evaluator) (any, error) {
			if len(h.Args) != 1 {
				return nil, interpreter.HelperError(h, "invalid number of arguments. Expected 1, but got %d", len(h.Args))
			}
			v, err := ev.InterpretNode(ctx, h.Args[0], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			return crypto.Keccak256Hash([]byte(interpreter.ToString(v))), nil
		},
	}
}

// ens resolves a name against the public ENS registry.
func (m *Std) ens() interpreter.Helper {
	return interpreter.Helper{
		Run: func(ctx context.Context, h *ast.HelperExpression, ev interpreter.Evaluator) (any, error) {
			if len(h.Args) != 1 {
				return nil, interpreter.HelperError(h, "invalid number of arguments. Expected 1, but got %d", len(h.Args))
			}
			v, err := ev.InterpretNode(ctx, h.Args[0], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			name := interpreter.ToString(v)
			if m.resolver == nil {
				return nil, interpreter.HelperError(h, "no ENS resolver configured")
			}
			addr, err := m.resolver.Resolve(ctx, name, ENSRegistry)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, interpreter.HelperError(h, "ENS name %s couldn't be resolved", name)
				}
				return nil, err
			}
			return addr, nil
		},
	}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// date converts an ISO date into a unix timestamp. An optional second
// argument is added as an offset in seconds (e.g. `@date(2024-01-01, 7d)`).
func (m *Std) date() interpreter.Helper {
	return interpreter.Helper{
		Run: func(ctx context.Context, h *ast.HelperExpression, ev interpreter.Evaluator) (any, error) {
			if len(h.Args) < 1 || len(h.Args) > 2 {
				return nil, interpreter.HelperError(h, "invalid number of arguments. Expected between 1 and 2, but got %d", len(h.Args))
			}
			v, err := ev.InterpretNode(ctx, h.Args[0], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			text := interpreter.ToString(v)
			var parsed time.Time
			for _, layout := range dateLayouts {
				if parsed, err = time.Parse(layout, text); err == nil {
					break
				}
			}
			if err != nil {
				return nil, interpreter.HelperError(h, "invalid date %s. Expected an ISO 8601 date", text)
			}

			ts := big.NewInt(parsed.Unix())
			if len(h.Args) == 2 {
				offset, err := ev.InterpretNode(ctx, h.Args[1])
				if err != nil {
					return nil, err
				}
				n, ok := offset.(*big.Int)
				if !ok {
					return nil, interpreter.HelperError(h, "invalid offset. Expected a number but got %s", interpreter.FormatValue(offset))
				}
				ts.Add(ts, n)
			}
			return ts, nil
		},
	}
}
