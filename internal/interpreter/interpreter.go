package interpreter

import (
	"context"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

// StdModuleName is the module every session loads implicitly.
const StdModuleName = "std"

type nodeOptions struct {
	treatAsLiteral   bool
	allowNotFound    bool
	blockModule      string
	blockInitializer func(ctx context.Context) error
}

// NodeOption tunes how InterpretNode evaluates a node.
type NodeOption func(*nodeOptions)

// TreatAsLiteral returns identifiers as their raw text instead of resolving
// them.
func TreatAsLiteral() NodeOption {
	return func(o *nodeOptions) { o.treatAsLiteral = true }
}

// AllowNotFound lets unresolved identifiers and malformed address literals
// through as raw strings.
func AllowNotFound() NodeOption {
	return func(o *nodeOptions) { o.allowNotFound = true }
}

// WithBlockModule makes unprefixed commands inside a block resolve against
// the named module before std.
func WithBlockModule(name string) NodeOption {
	return func(o *nodeOptions) { o.blockModule = name }
}

// WithBlockInitializer runs fn right after a block's scope is entered, before
// any statement is evaluated.
func WithBlockInitializer(fn func(ctx context.Context) error) NodeOption {
	return func(o *nodeOptions) { o.blockInitializer = fn }
}

// Interpreter evaluates a program depth-first, left to right.
type Interpreter struct {
	session      *Session
	blockModules []string
}

// New returns an interpreter over session with std loaded in the root scope.
func New(session *Session) (*Interpreter, error) {
	if _, err := session.Load(StdModuleName, ""); err != nil {
		return nil, err
	}
	return &Interpreter{session: session}, nil
}

func (i *Interpreter) Session() *Session {
	return i.session
}

// Interpret evaluates every statement of p and returns the concatenated
// actions. On failure nothing is returned.
func (i *Interpreter) Interpret(ctx context.Context, p *ast.Program) ([]domain.Action, error) {
	actions, err := i.interpretStatements(ctx, p.Body)
	if err != nil {
		return nil, err
	}
	return actions, nil
}

func (i *Interpreter) interpretStatements(ctx context.Context, body []*ast.CommandExpression) ([]domain.Action, error) {
	var actions []domain.Action
	for _, c := range body {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := i.interpretCommand(ctx, c)
		if err != nil {
			return nil, err
		}
		actions = append(actions, out...)
	}
	return actions, nil
}

// InterpretNodes evaluates nodes in order with the same options.
func (i *Interpreter) InterpretNodes(ctx context.Context, nodes []ast.Node, opts ...NodeOption) ([]any, error) {
	values := make([]any, 0, len(nodes))
	for _, n := range nodes {
		v, err := i.InterpretNode(ctx, n, opts...)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// InterpretNode evaluates a single node.
func (i *Interpreter) InterpretNode(ctx context.Context, n ast.Node, opts ...NodeOption) (any, error) {
	o := nodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	switch node := n.(type) {
	case *ast.NumberLiteral:
		v, err := ParseNumber(node.Value)
		if err != nil {
			return nil, ExpressionError(node, "%v", err)
		}
		return v, nil
	case *ast.StringLiteral:
		return node.Value, nil
	case *ast.BoolLiteral:
		return node.Value, nil
	case *ast.AddressLiteral:
		if !common.IsHexAddress(node.Value) {
			if o.allowNotFound {
				return node.Value, nil
			}
			return nil, ExpressionError(node, "invalid address %s", node.Value)
		}
		return common.HexToAddress(node.Value), nil
	case *ast.BytesLiteral:
		b, err := hexutil.Decode(node.Value)
		if err != nil {
			return nil, ExpressionError(node, "invalid bytes %s: %v", node.Value, err)
		}
		return hexutil.Bytes(b), nil
	case *ast.Identifier:
		return i.interpretIdentifier(node, o)
	case *ast.AsExpression:
		left, err := i.InterpretNode(ctx, node.Left, TreatAsLiteral())
		if err != nil {
			return nil, err
		}
		right, err := i.InterpretNode(ctx, node.Right, TreatAsLiteral())
		if err != nil {
			return nil, err
		}
		return []any{left, right}, nil
	case *ast.BinaryExpression:
		left, err := i.InterpretNode(ctx, node.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.InterpretNode(ctx, node.Right)
		if err != nil {
			return nil, err
		}
		return evalArithmetic(node, left, right)
	case *ast.BlockExpression:
		return i.interpretBlock(ctx, node, o)
	case *ast.CommandExpression:
		return i.interpretCommand(ctx, node)
	case *ast.HelperExpression:
		return i.interpretHelper(ctx, node)
	case nil:
		return nil, domain.NewExpressionError("", "", nil, "missing node")
	default:
		return nil, ExpressionError(n, "unknown node type %s", n.Type())
	}
}

func (i *Interpreter) interpretIdentifier(n *ast.Identifier, o nodeOptions) (any, error) {
	if o.treatAsLiteral {
		return n.Value, nil
	}
	space := AddrSpace
	if n.IsVariable() {
		space = UserSpace
	}
	if v, ok := i.session.Bindings.GetBinding(n.Value, space); ok {
		return v, nil
	}
	if o.allowNotFound {
		return n.Value, nil
	}
	err := domain.NewNotFoundError("identifier %s not found", n.Value)
	err.Node = string(n.Type())
	err.Pos = position(n)
	return nil, err
}

// interpretBlock evaluates a block in a child scope. The scope and block
// module are released on every path.
func (i *Interpreter) interpretBlock(ctx context.Context, b *ast.BlockExpression, o nodeOptions) ([]domain.Action, error) {
	if o.blockModule != "" {
		i.blockModules = append(i.blockModules, o.blockModule)
		defer func() { i.blockModules = i.blockModules[:len(i.blockModules)-1] }()
	}

	i.session.Bindings.EnterScope()
	defer i.session.Bindings.ExitScope()

	if o.blockInitializer != nil {
		if err := o.blockInitializer(ctx); err != nil {
			return nil, err
		}
	}
	return i.interpretStatements(ctx, b.Body)
}

func (i *Interpreter) interpretCommand(ctx context.Context, c *ast.CommandExpression) ([]domain.Action, error) {
	cmd, err := i.resolveCommand(c)
	if err != nil {
		return nil, err
	}
	i.session.Log.Debug("running command", "command", c.FullName(), "location", c.Location.String())
	actions, err := cmd.Run(ctx, c, i)
	if err != nil {
		return nil, withCommand(c, err)
	}
	return actions, nil
}

func (i *Interpreter) resolveCommand(c *ast.CommandExpression) (Command, error) {
	if c.Module != "" {
		m, ok := i.session.Module(c.Module)
		if !ok {
			return Command{}, withCommand(c, domain.NewNotFoundError("module %s not found", c.Module))
		}
		cmd, err := ResolveCommand(m, c.Name)
		if err != nil {
			return Command{}, withCommand(c, err)
		}
		return cmd, nil
	}

	var candidates []string
	for idx := len(i.blockModules) - 1; idx >= 0; idx-- {
		m, ok := i.session.Module(i.blockModules[idx])
		if !ok {
			continue
		}
		if cmd, ok := m.Commands()[c.Name]; ok {
			return cmd, nil
		}
		candidates = append(candidates, keys(m.Commands())...)
	}
	std, ok := i.session.Module(StdModuleName)
	if ok {
		if cmd, ok := std.Commands()[c.Name]; ok {
			return cmd, nil
		}
		candidates = append(candidates, keys(std.Commands())...)
	}

	err := domain.NewNotFoundError("command %s not found", c.Name)
	if s := Suggest(c.Name, candidates); s != "" {
		err.Message += ". Did you mean " + s + "?"
	}
	return Command{}, withCommand(c, err)
}

func (i *Interpreter) interpretHelper(ctx context.Context, h *ast.HelperExpression) (any, error) {
	name := strings.TrimPrefix(h.Name, "@")
	var candidates []string
	for _, m := range i.session.Modules() {
		helper, ok := m.Helpers()[name]
		if !ok {
			candidates = append(candidates, keys(m.Helpers())...)
			continue
		}
		v, err := helper.Run(ctx, h, i)
		if err != nil {
			var derr *domain.Error
			if errors.As(err, &derr) && derr.Node == "" && derr.Pos == nil {
				cp := *derr
				cp.Node = "@" + name
				cp.Pos = position(h)
				return nil, &cp
			}
			return nil, err
		}
		return v, nil
	}
	err := domain.NewNotFoundError("helper @%s not found", name)
	if s := Suggest(name, candidates); s != "" {
		err.Message += ". Did you mean @" + s + "?"
	}
	err.Node = string(h.Type())
	err.Pos = position(h)
	return nil, err
}

// Completions returns identifier suggestions for argument argIndex of c
// given the bindings currently visible.
func (i *Interpreter) Completions(c *ast.CommandExpression, argIndex int) []string {
	cmd, err := i.resolveCommand(c)
	if err != nil || cmd.Completions == nil {
		return nil
	}
	return cmd.Completions(argIndex, i.session.Bindings)
}
