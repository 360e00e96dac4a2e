package std

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/samber/lo"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

func (m *Std) load() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateLoad(c); err != nil {
				return nil, err
			}

			var name, alias string
			v, err := ev.InterpretNode(ctx, c.Args[0], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			switch val := v.(type) {
			case []any:
				name, alias = interpreter.ToString(val[0]), interpreter.ToString(val[1])
			default:
				name = interpreter.ToString(val)
			}

			if _, err := m.session.Load(name, alias); err != nil {
				return nil, err
			}
			return nil, nil
		},
		PreValidate: validateLoad,
	}
}

func validateLoad(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.Exactly(1)); err != nil {
		return err
	}
	if err := interpreter.CheckOpts(c); err != nil {
		return err
	}
	switch c.Args[0].(type) {
	case *ast.Identifier, *ast.StringLiteral, *ast.AsExpression:
		return nil
	default:
		return interpreter.CommandError(c, "invalid argument. Expected a module name, but got %s", c.Args[0].Type())
	}
}

func (m *Std) set() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateSet(c); err != nil {
				return nil, err
			}
			name := c.Args[0].(*ast.Identifier).Value
			v, err := ev.InterpretNode(ctx, c.Args[1])
			if err != nil {
				return nil, err
			}
			m.session.Bindings.SetBinding(name, v, interpreter.UserSpace)
			return nil, nil
		},
		PreValidate: validateSet,
	}
}

func validateSet(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.Exactly(2)); err != nil {
		return err
	}
	if err := interpreter.CheckOpts(c); err != nil {
		return err
	}
	id, ok := c.Args[0].(*ast.Identifier)
	if !ok || !id.IsVariable() {
		return interpreter.CommandError(c, "invalid variable. Expected a variable identifier starting with $")
	}
	return nil
}

func (m *Std) exec() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateExec(c); err != nil {
				return nil, err
			}

			target, err := ev.InterpretNode(ctx, c.Args[0])
			if err != nil {
				return nil, err
			}
			to, ok := interpreter.ToAddress(target)
			if !ok {
				return nil, interpreter.CommandError(c, "invalid target. Expected an address, but got %s", interpreter.FormatValue(target))
			}

			sig, err := ev.InterpretNode(ctx, c.Args[1], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			method, err := interpreter.ParseFunctionSignature(interpreter.ToString(sig))
			if err != nil {
				return nil, interpreter.CommandError(c, "%v", err)
			}

			params, err := ev.InterpretNodes(ctx, c.Args[2:])
			if err != nil {
				return nil, err
			}
			data, err := interpreter.EncodeCalldata(method, params)
			if err != nil {
				return nil, interpreter.CommandError(c, "error when encoding %s call: %v", method.Sig, err)
			}

			action := domain.TransactionAction{To: to, Data: data}
			value, found, err := interpreter.OptValue(ctx, c, "value", ev)
			if err != nil {
				return nil, err
			}
			if found {
				n, ok := value.(*big.Int)
				if !ok || n.Sign() < 0 {
					return nil, interpreter.CommandError(c, "invalid --value option. Expected a non-negative number, but got %s", interpreter.FormatValue(value))
				}
				action.Value = n
			}
			return []domain.Action{action}, nil
		},
		Completions: func(argIndex int, b *interpreter.Bindings) []string {
			if argIndex != 0 {
				return nil
			}
			return b.Names(interpreter.AddrSpace)
		},
		PreValidate: validateExec,
	}
}

func validateExec(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.AtLeast(2)); err != nil {
		return err
	}
	return interpreter.CheckOpts(c, "value")
}

func (m *Std) switchNetwork() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateSwitch(c); err != nil {
				return nil, err
			}
			v, err := ev.InterpretNode(ctx, c.Args[0], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}

			var chainID uint64
			switch val := v.(type) {
			case *big.Int:
				if !val.IsUint64() {
					return nil, interpreter.CommandError(c, "invalid chain id %s", val)
				}
				chainID = val.Uint64()
			default:
				name := strings.ToLower(interpreter.ToString(val))
				network, ok := lo.Find(domain.Networks(), func(n domain.Network) bool { return n.Name == name })
				if !ok {
					names := lo.Map(domain.Networks(), func(n domain.Network, _ int) string { return n.Name })
					return nil, interpreter.CommandError(c, "network %s not supported. Expected one of: %s", name, domain.CommaListItems(names))
				}
				chainID = network.ChainID
			}
			return []domain.Action{domain.SwitchChainAction(chainID)}, nil
		},
		PreValidate: validateSwitch,
	}
}

func validateSwitch(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.Exactly(1)); err != nil {
		return err
	}
	return interpreter.CheckOpts(c)
}

func (m *Std) print() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := interpreter.CheckArgsLength(c, interpreter.AtLeast(1)); err != nil {
				return nil, err
			}
			values, err := ev.InterpretNodes(ctx, c.Args)
			if err != nil {
				return nil, err
			}
			line := strings.Join(lo.Map(values, func(v any, _ int) string { return interpreter.ToString(v) }), " ")
			m.session.Log.Debug("print", "line", line)
			if _, err := fmt.Fprintln(m.session.Out, line); err != nil {
				return nil, domain.NewException(err, "failed to print")
			}
			return nil, nil
		},
	}
}

// me returns the address actions are produced for.
func (m *Std) me() interpreter.Helper {
	return interpreter.Helper{
		Run: func(ctx context.Context, h *ast.HelperExpression, ev interpreter.Evaluator) (any, error) {
			if len(h.Args) != 0 {
				return nil, interpreter.HelperError(h, "invalid number of arguments. Expected 0, but got %d", len(h.Args))
			}
			if m.session.Chain == nil {
				return nil, interpreter.HelperError(h, "no signer available")
			}
			return m.session.Chain.Address(), nil
		},
	}
}
