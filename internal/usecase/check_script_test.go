package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/lobintsev/evmcrispr/internal/testutil"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

func TestCheckScript(t *testing.T) {
	ctx := context.Background()
	chain := NewFakeChain(signer)

	t.Run("valid script", func(t *testing.T) {
		loader := new(MockScriptLoader)
		loader.On("Load", ctx, "ok.evm").Return(Program(
			Cmd("set", Ident("$x"), Num("1")),
			Cmd("print", Ident("$x")),
		), nil)

		result, err := usecase.NewCheckScript(loader, &stubSessions{chain: chain}, usecase.NopProgress{}).
			Run(ctx, usecase.CheckScriptParams{Path: "ok.evm"})
		require.NoError(t, err)
		assert.True(t, result.Valid())
		assert.Equal(t, 2, result.Statements)
		assert.Empty(t, chain.Calls)
	})

	t.Run("every problem is listed", func(t *testing.T) {
		result, err := usecase.NewCheckScript(new(MockScriptLoader), &stubSessions{chain: chain}, usecase.NopProgress{}).
			Run(ctx, usecase.CheckScriptParams{Program: Program(
				Cmd("set", Ident("x"), Num("1")),
				Cmd("exec", Ident("vault")),
			)})
		require.NoError(t, err)
		assert.False(t, result.Valid())
		require.Len(t, result.Problems, 2)
		assert.Contains(t, result.Problems[0].Error(), "Expected a variable identifier starting with $")
		assert.Contains(t, result.Problems[1].Error(), "Expected at least 2 arguments, but got 1")
	})

	t.Run("statements inside blocks are counted", func(t *testing.T) {
		result, err := usecase.NewCheckScript(new(MockScriptLoader), &stubSessions{chain: chain}, usecase.NopProgress{}).
			Run(ctx, usecase.CheckScriptParams{Program: Program(
				Cmd("load", Ident("std")),
				Cmd("print", Str("a"), Block(Cmd("print", Str("b")), Cmd("print", Str("c")))),
			)})
		require.NoError(t, err)
		assert.Equal(t, 4, result.Statements)
	})
}
