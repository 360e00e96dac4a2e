package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
	"github.com/lobintsev/evmcrispr/internal/modules/std"
	. "github.com/lobintsev/evmcrispr/internal/testutil"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

var signer = common.HexToAddress("0x00000000000000000000000000000000000000a1")

// MockScriptLoader is a mock implementation of ScriptLoader
type MockScriptLoader struct {
	mock.Mock
}

func (m *MockScriptLoader) Load(ctx context.Context, path string) (*ast.Program, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ast.Program), args.Error(1)
}

// stubSessions builds sessions on a fake chain with the std module only
type stubSessions struct {
	chain *FakeChain
}

func (s *stubSessions) NewSession(out io.Writer) *interpreter.Session {
	return interpreter.NewSession(s.chain, NewFakeFetcher(),
		interpreter.WithOutput(out),
		interpreter.WithModule(std.ModuleName, std.New(NewFakeResolver())),
	)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func (m *MockProgressSink) stages() []usecase.ExecutionStage {
	out := make([]usecase.ExecutionStage, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Stage)
	}
	return out
}

func newRunScript(loader usecase.ScriptLoader, progress usecase.ProgressSink) *usecase.RunScript {
	cfg := &config.RuntimeConfig{Network: &config.Network{ChainID: 100, Name: "gnosis"}}
	return usecase.NewRunScript(cfg, loader, &stubSessions{chain: NewFakeChain(signer)}, progress, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunScript(t *testing.T) {
	ctx := context.Background()
	receiver := "0x00000000000000000000000000000000000000b0"

	t.Run("loads and interprets a script", func(t *testing.T) {
		program := Program(
			Cmd("set", Ident("$amount"), Num("1e18")),
			Cmd("print", Str("sending")),
			Cmd("exec", Addr(receiver), Str("transfer(address,uint256)"), Addr(receiver), Ident("$amount")),
		)
		loader := new(MockScriptLoader)
		loader.On("Load", ctx, "pay.evm").Return(program, nil)
		progress := &MockProgressSink{}
		out := &bytes.Buffer{}

		result, err := newRunScript(loader, progress).Run(ctx, usecase.RunScriptParams{Path: "pay.evm", Output: out})
		require.NoError(t, err)

		require.Len(t, result.Actions, 1)
		tx, ok := result.Actions[0].(domain.TransactionAction)
		require.True(t, ok)
		assert.Equal(t, common.HexToAddress(receiver), tx.To)
		assert.Equal(t, signer, result.From)
		assert.Equal(t, uint64(100), result.ChainID)
		assert.Contains(t, out.String(), "sending")
		assert.Equal(t, []usecase.ExecutionStage{
			usecase.StageLoading,
			usecase.StageValidating,
			usecase.StageInterpreting,
			usecase.StageCompleted,
		}, progress.stages())
		loader.AssertExpectations(t)
	})

	t.Run("program given directly skips the loader", func(t *testing.T) {
		loader := new(MockScriptLoader)
		result, err := newRunScript(loader, usecase.NopProgress{}).Run(ctx, usecase.RunScriptParams{
			Program: Program(Cmd("print", Str("hi"))),
		})
		require.NoError(t, err)
		assert.Empty(t, result.Actions)
		loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("no script", func(t *testing.T) {
		_, err := newRunScript(new(MockScriptLoader), usecase.NopProgress{}).Run(ctx, usecase.RunScriptParams{})
		assert.EqualError(t, err, "no script given")
	})

	t.Run("loader failure", func(t *testing.T) {
		loader := new(MockScriptLoader)
		loader.On("Load", ctx, "missing.evm").Return(nil, errors.New("file does not exist"))

		_, err := newRunScript(loader, usecase.NopProgress{}).Run(ctx, usecase.RunScriptParams{Path: "missing.evm"})
		assert.EqualError(t, err, "failed to load script missing.evm: file does not exist")
	})

	t.Run("static errors stop before interpreting", func(t *testing.T) {
		progress := &MockProgressSink{}
		_, err := newRunScript(new(MockScriptLoader), progress).Run(ctx, usecase.RunScriptParams{
			Program: Program(Cmd("exec", Addr(receiver))),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected at least 2 arguments, but got 1")
		assert.NotContains(t, progress.stages(), usecase.StageInterpreting)
	})

	t.Run("interpretation errors", func(t *testing.T) {
		_, err := newRunScript(new(MockScriptLoader), usecase.NopProgress{}).Run(ctx, usecase.RunScriptParams{
			Program: Program(Cmd("print", Bin("/", Num("1"), Num("0")))),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrExpression))
	})

	t.Run("no network configured", func(t *testing.T) {
		sessions := &stubSessions{chain: NewFakeChain(signer)}
		uc := usecase.NewRunScript(&config.RuntimeConfig{}, new(MockScriptLoader), sessions, usecase.NopProgress{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

		result, err := uc.Run(ctx, usecase.RunScriptParams{Program: Program(Cmd("print", Str("x")))})
		require.NoError(t, err)
		assert.Zero(t, result.ChainID)
		assert.NotNil(t, result.Labels)
	})
}
