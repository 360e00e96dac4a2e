package aragonos

import (
	"context"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

func (m *AragonOS) forward() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateForward(c); err != nil {
				return nil, err
			}
			blockNode := c.Args[len(c.Args)-1]
			dao, _ := m.CurrentDAO()

			forwarders, err := m.resolveForwarders(ctx, c, c.Args[:len(c.Args)-1], ev, dao)
			if err != nil {
				return nil, err
			}

			out, err := ev.InterpretNode(ctx, blockNode, interpreter.WithBlockModule(m.ContextualName()))
			if err != nil {
				return nil, err
			}
			actions, _ := out.([]domain.Action)
			if hasProviderAction(actions) {
				return nil, interpreter.CommandError(c, "can't switch networks inside a connect command")
			}

			forwardContext, err := contextOpt(ctx, c, ev)
			if err != nil {
				return nil, err
			}
			txs, _ := domain.TransactionActions(actions)
			return m.batchForwarderActions(ctx, c, txs, forwarders, forwardContext)
		},
		Completions: func(argIndex int, b *interpreter.Bindings) []string {
			return b.Names(interpreter.AddrSpace)
		},
		PreValidate: validateForward,
	}
}

func validateForward(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.AtLeast(2)); err != nil {
		return err
	}
	if err := interpreter.CheckOpts(c, "context"); err != nil {
		return err
	}
	if _, ok := c.Args[len(c.Args)-1].(*ast.BlockExpression); !ok {
		return interpreter.CommandError(c, "last argument should be a set of commands")
	}
	return nil
}
