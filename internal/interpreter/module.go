package interpreter

import (
	"context"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
)

// Evaluator is handed to commands and helpers so they can evaluate only the
// nodes they need, in the order their semantics require.
type Evaluator interface {
	InterpretNode(ctx context.Context, n ast.Node, opts ...NodeOption) (any, error)
	InterpretNodes(ctx context.Context, nodes []ast.Node, opts ...NodeOption) ([]any, error)
	Session() *Session
}

// Command is a script-invocable operation producing actions. Completions and
// PreValidate are optional; PreValidate must not touch the network or any
// session state.
type Command struct {
	Run         func(ctx context.Context, c *ast.CommandExpression, ev Evaluator) ([]domain.Action, error)
	Completions func(argIndex int, bindings *Bindings) []string
	PreValidate func(c *ast.CommandExpression) error
}

// Helper is a script-invocable operation producing a plain value.
type Helper struct {
	Run func(ctx context.Context, h *ast.HelperExpression, ev Evaluator) (any, error)
}

// Module is a named collection of commands and helpers.
type Module interface {
	Name() string
	Alias() string
	// ContextualName is the alias when set, the name otherwise
	ContextualName() string
	Commands() map[string]Command
	Helpers() map[string]Helper
}

// ModuleFactory instantiates a module for a session.
type ModuleFactory func(s *Session, alias string) (Module, error)

// BaseModule carries the identity shared by every module implementation.
type BaseModule struct {
	name     string
	alias    string
	commands map[string]Command
	helpers  map[string]Helper
}

// NewBaseModule returns a module shell. Implementations embed it and fill the
// tables through Register* during construction.
func NewBaseModule(name, alias string) BaseModule {
	return BaseModule{
		name:     name,
		alias:    alias,
		commands: map[string]Command{},
		helpers:  map[string]Helper{},
	}
}

func (m *BaseModule) Name() string  { return m.name }
func (m *BaseModule) Alias() string { return m.alias }

func (m *BaseModule) ContextualName() string {
	if m.alias != "" {
		return m.alias
	}
	return m.name
}

func (m *BaseModule) Commands() map[string]Command { return m.commands }
func (m *BaseModule) Helpers() map[string]Helper   { return m.helpers }

func (m *BaseModule) RegisterCommand(name string, c Command) { m.commands[name] = c }
func (m *BaseModule) RegisterHelper(name string, h Helper)   { m.helpers[name] = h }

// ResolveCommand looks name up in m, failing with a not-found error that
// suggests close matches.
func ResolveCommand(m Module, name string) (Command, error) {
	if c, ok := m.Commands()[name]; ok {
		return c, nil
	}
	return Command{}, notFoundWithSuggestion("command", name, m.ContextualName(), keys(m.Commands()))
}

// ResolveHelper looks name up in m.
func ResolveHelper(m Module, name string) (Helper, error) {
	if h, ok := m.Helpers()[name]; ok {
		return h, nil
	}
	return Helper{}, notFoundWithSuggestion("helper", "@"+name, m.ContextualName(), keys(m.Helpers()))
}

func notFoundWithSuggestion(kind, name, module string, candidates []string) error {
	err := domain.NewNotFoundError("%s %s not found on module %s", kind, name, module)
	if s := Suggest(name, candidates); s != "" {
		err.Message += ". Did you mean " + s + "?"
	}
	return err
}

// Suggest returns the closest fuzzy match of pattern among candidates.
func Suggest(pattern string, candidates []string) string {
	if len(candidates) == 0 || pattern == "" {
		return ""
	}
	matches := fuzzy.Find(pattern, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// RankCompletions orders candidates by fuzzy score against prefix, keeping
// everything when prefix is empty.
func RankCompletions(prefix string, candidates []string) []string {
	if prefix == "" {
		out := append([]string(nil), candidates...)
		sort.Strings(out)
		return out
	}
	matches := fuzzy.Find(prefix, candidates)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
