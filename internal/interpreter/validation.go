package interpreter

import (
	"context"
	"fmt"
	"strings"

	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

// Arity constrains the number of arguments a command accepts. Max < 0 means
// no upper bound.
type Arity struct {
	Min int
	Max int
}

func Exactly(n int) Arity      { return Arity{Min: n, Max: n} }
func AtLeast(n int) Arity      { return Arity{Min: n, Max: -1} }
func Between(lo, hi int) Arity { return Arity{Min: lo, Max: hi} }

func (a Arity) allows(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("at least %d", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("exactly %d", a.Min)
	default:
		return fmt.Sprintf("between %d and %d", a.Min, a.Max)
	}
}

// CheckArgsLength fails with a CommandError when c has the wrong number of
// arguments. It never evaluates anything.
func CheckArgsLength(c *ast.CommandExpression, a Arity) error {
	if a.allows(len(c.Args)) {
		return nil
	}
	noun := "arguments"
	if a.Max == 1 && a.Min == 1 {
		noun = "argument"
	}
	return CommandError(c, "invalid number of arguments. Expected %s %s, but got %d", a, noun, len(c.Args))
}

// CheckOpts fails with a CommandError when c carries an option outside
// allowed.
func CheckOpts(c *ast.CommandExpression, allowed ...string) error {
	var invalid []string
	for _, o := range c.Opts {
		ok := false
		for _, name := range allowed {
			if o.Name == name {
				ok = true
				break
			}
		}
		if !ok {
			invalid = append(invalid, "--"+o.Name)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return CommandError(c, "invalid options found: %s", strings.Join(invalid, ", "))
}

// OptValue evaluates option name of c. The boolean is false when the option
// is absent.
func OptValue(ctx context.Context, c *ast.CommandExpression, name string, ev Evaluator, opts ...NodeOption) (any, bool, error) {
	o, ok := c.Opt(name)
	if !ok {
		return nil, false, nil
	}
	v, err := ev.InterpretNode(ctx, o.Value, opts...)
	if err != nil {
		return nil, true, err
	}
	return v, true, nil
}
