package usecase

import (
	"context"
	"io"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// ScriptLoader reads a script into its AST
type ScriptLoader interface {
	Load(ctx context.Context, path string) (*ast.Program, error)
}

// SessionFactory builds a fresh interpreter session with every module
// registered. Output of print commands goes to out.
type SessionFactory interface {
	NewSession(out io.Writer) *interpreter.Session
}

// NonceReader reads the transaction count of an account
type NonceReader interface {
	NonceAt(ctx context.Context, account common.Address) (uint64, error)
}

// Progress tracking interfaces

// ExecutionStage names a step of script execution
type ExecutionStage string

const (
	StageLoading      ExecutionStage = "loading"
	StageValidating   ExecutionStage = "validating"
	StageInterpreting ExecutionStage = "interpreting"
	StageCompleted    ExecutionStage = "completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
