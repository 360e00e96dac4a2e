package aragonos

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// forwarderWithContext is the forwarderType() of forwarders taking a
// context argument.
const forwarderWithContext = 2

// resolveForwarders evaluates forwarder nodes, letting unresolved
// identifiers fall back to dao's apps. Every invalid entry is reported in a
// single error.
func (m *AragonOS) resolveForwarders(ctx context.Context, c *ast.CommandExpression, nodes []ast.Node, ev interpreter.Evaluator, dao *DAO) ([]common.Address, error) {
	values, err := ev.InterpretNodes(ctx, nodes, interpreter.AllowNotFound())
	if err != nil {
		return nil, err
	}

	forwarders := make([]common.Address, 0, len(values))
	var invalid []string
	for _, v := range values {
		if addr, ok := interpreter.ToAddress(v); ok {
			forwarders = append(forwarders, addr)
			continue
		}
		if s, ok := v.(string); ok && dao != nil {
			if app, ok := dao.ResolveApp(s); ok {
				forwarders = append(forwarders, app.Address)
				continue
			}
		}
		invalid = append(invalid, interpreter.ToString(v))
	}
	if len(invalid) > 0 {
		return nil, interpreter.CommandError(c, "%s are not valid forwarder address", domain.CommaListItems(invalid))
	}
	return forwarders, nil
}

// batchForwarderActions wraps actions through forwarders. The first listed
// forwarder is the innermost layer and the only one that receives
// forwardContext; the last listed one is the target of the returned action.
func (m *AragonOS) batchForwarderActions(ctx context.Context, c *ast.CommandExpression, actions []domain.TransactionAction, forwarders []common.Address, forwardContext *string) ([]domain.Action, error) {
	if len(forwarders) == 0 {
		out := make([]domain.Action, 0, len(actions))
		for _, a := range actions {
			out = append(out, a)
		}
		return out, nil
	}

	current := actions
	for i, f := range forwarders {
		script := domain.EncodeCallScript(current)
		withContext := m.isForwarderWithContext(ctx, f)

		var data []byte
		switch {
		case i == 0 && forwardContext != nil && !withContext:
			return nil, interpreter.CommandError(c, "forwarder %s doesn't support a context", f.Hex())
		case withContext:
			var payload []byte
			if i == 0 && forwardContext != nil {
				payload = []byte(*forwardContext)
			}
			data = m.forwarder.PackForward0(script, payload)
		default:
			data = m.forwarder.PackForward(script)
		}
		current = []domain.TransactionAction{{To: f, Data: data}}
	}
	return []domain.Action{current[0]}, nil
}

// isForwarderWithContext asks the forwarder for its type. Forwarders that
// don't implement forwarderType() are treated as context-less.
func (m *AragonOS) isForwarderWithContext(ctx context.Context, f common.Address) bool {
	if m.session.Chain == nil {
		return false
	}
	out, err := m.session.Chain.CallContract(ctx, ethereum.CallMsg{To: &f, Data: m.forwarder.PackForwarderType()}, nil)
	if err != nil || len(out) == 0 {
		return false
	}
	t, err := m.forwarder.UnpackForwarderType(out)
	if err != nil {
		return false
	}
	return t == forwarderWithContext
}

func contextOpt(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) (*string, error) {
	v, found, err := interpreter.OptValue(ctx, c, "context", ev)
	if err != nil || !found {
		return nil, err
	}
	s := interpreter.ToString(v)
	return &s, nil
}
