package interpreter

import (
	"errors"

	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

// PreValidate runs every command's PreValidate hook over p without
// evaluating anything. Modules are resolved statically from the `load`
// statements seen so far, on a scratch session so the real one stays
// untouched. All failures are returned joined.
func (i *Interpreter) PreValidate(p *ast.Program) error {
	scratch := NewSession(nil, nil)
	scratch.factories = i.session.factories
	scratch.Log = i.session.Log

	std, err := scratch.Load(StdModuleName, "")
	if err != nil {
		return err
	}
	v := &preValidator{session: scratch, std: std}
	v.walk(p.Body, nil)
	return errors.Join(v.errs...)
}

type preValidator struct {
	session *Session
	std     Module
	errs    []error
}

func (v *preValidator) walk(body []*ast.CommandExpression, blockModule Module) {
	for _, c := range body {
		m := v.moduleFor(c, blockModule)
		if m == nil {
			continue
		}
		if c.Name == "load" && m == v.std {
			v.load(c)
		}
		if cmd, ok := m.Commands()[c.Name]; ok && cmd.PreValidate != nil {
			if err := cmd.PreValidate(c); err != nil {
				v.errs = append(v.errs, withCommand(c, err))
			}
		}
		for _, arg := range c.Args {
			if b, ok := arg.(*ast.BlockExpression); ok {
				v.walk(b.Body, m)
			}
		}
	}
}

func (v *preValidator) moduleFor(c *ast.CommandExpression, blockModule Module) Module {
	if c.Module != "" {
		m, ok := v.session.Module(c.Module)
		if !ok {
			return nil
		}
		return m
	}
	if blockModule != nil {
		if _, ok := blockModule.Commands()[c.Name]; ok {
			return blockModule
		}
	}
	return v.std
}

// load mirrors std's load statically so later prefixed commands resolve.
func (v *preValidator) load(c *ast.CommandExpression) {
	if len(c.Args) != 1 {
		return
	}
	var name, alias string
	switch n := c.Args[0].(type) {
	case *ast.Identifier:
		name = n.Value
	case *ast.StringLiteral:
		name = n.Value
	case *ast.AsExpression:
		l, lok := literalText(n.Left)
		r, rok := literalText(n.Right)
		if !lok || !rok {
			return
		}
		name, alias = l, r
	default:
		return
	}
	// unknown modules are reported by load's own hook
	_, _ = v.session.Load(name, alias)
}

func literalText(n ast.Node) (string, bool) {
	switch node := n.(type) {
	case *ast.Identifier:
		return node.Value, true
	case *ast.StringLiteral:
		return node.Value, true
	}
	return "", false
}
