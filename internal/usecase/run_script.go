package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// RunScriptParams contains parameters for running a script. Program takes
// precedence over Path when set.
type RunScriptParams struct {
	Path    string
	Program *ast.Program
	// Output receives print command output
	Output io.Writer
}

// RunScriptResult contains the result of running a script
type RunScriptResult struct {
	Actions []domain.Action
	From    common.Address
	ChainID uint64
	// Labels names addresses known to the script (app identifiers, aliases)
	Labels map[common.Address]string
}

// RunScript interprets a script into the ordered list of actions it
// produces. Nothing is submitted.
type RunScript struct {
	config   *config.RuntimeConfig
	loader   ScriptLoader
	sessions SessionFactory
	progress ProgressSink
	log      *slog.Logger
}

// NewRunScript creates a new RunScript use case
func NewRunScript(
	cfg *config.RuntimeConfig,
	loader ScriptLoader,
	sessions SessionFactory,
	progress ProgressSink,
	log *slog.Logger,
) *RunScript {
	return &RunScript{
		config:   cfg,
		loader:   loader,
		sessions: sessions,
		progress: progress,
		log:      log.With("component", "run"),
	}
}

// Run executes the script with the given parameters
func (uc *RunScript) Run(ctx context.Context, params RunScriptParams) (*RunScriptResult, error) {
	program, err := loadProgram(ctx, uc.loader, uc.progress, params.Path, params.Program)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = io.Discard
	}
	session := uc.sessions.NewSession(out)
	interp, err := interpreter.New(session)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageValidating, Message: "Validating script"})
	if err := interp.PreValidate(program); err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageInterpreting, Message: "Interpreting script", Spinner: true})
	actions, err := interp.Interpret(ctx, program)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, err
	}

	uc.log.Debug("script interpreted", "statements", len(program.Body), "actions", len(actions))

	result := &RunScriptResult{
		Actions: actions,
		Labels:  addressLabels(session),
	}
	if session.Chain != nil {
		result.From = session.Chain.Address()
	}
	if uc.config.Network != nil {
		result.ChainID = uc.config.Network.ChainID
	}
	return result, nil
}

func loadProgram(ctx context.Context, loader ScriptLoader, progress ProgressSink, path string, program *ast.Program) (*ast.Program, error) {
	if program != nil {
		return program, nil
	}
	if path == "" {
		return nil, fmt.Errorf("no script given")
	}

	progress.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading " + path})
	program, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", path, err)
	}
	return program, nil
}

type addressLabeler interface {
	AddressLabels() map[common.Address]string
}

func addressLabels(s *interpreter.Session) map[common.Address]string {
	labels := map[common.Address]string{}
	for _, m := range s.Modules() {
		if l, ok := m.(addressLabeler); ok {
			for addr, name := range l.AddressLabels() {
				labels[addr] = name
			}
		}
	}
	for name, v := range s.Bindings.Snapshot(interpreter.AddrSpace) {
		addr, ok := v.(common.Address)
		if !ok {
			continue
		}
		if _, exists := labels[addr]; !exists {
			labels[addr] = name
		}
	}
	return labels
}
