package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// CheckScriptParams contains parameters for checking a script
type CheckScriptParams struct {
	Path    string
	Program *ast.Program
}

// CheckScriptResult lists every problem found by static validation
type CheckScriptResult struct {
	Statements int
	Problems   []error
}

// Valid reports whether no problem was found
func (r *CheckScriptResult) Valid() bool {
	return len(r.Problems) == 0
}

// CheckScript runs static validation only: module resolution plus every
// command's argument and option checks. No external service is queried.
type CheckScript struct {
	loader   ScriptLoader
	sessions SessionFactory
	progress ProgressSink
}

// NewCheckScript creates a new CheckScript use case
func NewCheckScript(loader ScriptLoader, sessions SessionFactory, progress ProgressSink) *CheckScript {
	return &CheckScript{
		loader:   loader,
		sessions: sessions,
		progress: progress,
	}
}

// Run validates the script
func (uc *CheckScript) Run(ctx context.Context, params CheckScriptParams) (*CheckScriptResult, error) {
	program, err := loadProgram(ctx, uc.loader, uc.progress, params.Path, params.Program)
	if err != nil {
		return nil, err
	}

	interp, err := interpreter.New(uc.sessions.NewSession(io.Discard))
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	result := &CheckScriptResult{Statements: countStatements(program.Body)}
	if err := interp.PreValidate(program); err != nil {
		result.Problems = unwrapJoined(err)
	}
	return result, nil
}

func countStatements(body []*ast.CommandExpression) int {
	n := 0
	for _, c := range body {
		n++
		for _, arg := range c.Args {
			if b, ok := arg.(*ast.BlockExpression); ok {
				n += countStatements(b.Body)
			}
		}
	}
	return n
}

func unwrapJoined(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
