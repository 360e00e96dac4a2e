package aragonos

import (
	"context"
	"errors"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// aragonEnsHelper resolves a name against the Aragon ENS registry, or the
// registry given as second argument.
func (m *AragonOS) aragonEnsHelper() interpreter.Helper {
	return interpreter.Helper{
		Run: func(ctx context.Context, h *ast.HelperExpression, ev interpreter.Evaluator) (any, error) {
			if len(h.Args) < 1 || len(h.Args) > 2 {
				return nil, interpreter.HelperError(h, "invalid number of arguments. Expected between 1 and 2, but got %d", len(h.Args))
			}
			v, err := ev.InterpretNode(ctx, h.Args[0], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			name := interpreter.ToString(v)
			if m.resolver == nil {
				return nil, interpreter.HelperError(h, "no ENS resolver configured")
			}

			registry, err := m.aragonENS(ctx)
			if len(h.Args) == 2 {
				r, err2 := ev.InterpretNode(ctx, h.Args[1])
				if err2 != nil {
					return nil, err2
				}
				addr, ok := interpreter.ToAddress(r)
				if !ok {
					return nil, interpreter.HelperError(h, "invalid ENS registry. Expected an address, but got %s", interpreter.FormatValue(r))
				}
				registry, err = addr, nil
			}
			if err != nil {
				return nil, err
			}

			addr, err := m.resolver.Resolve(ctx, name, registry)
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
