package ens_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/adapters/ens"
	"github.com/lobintsev/evmcrispr/internal/domain"
	. "github.com/lobintsev/evmcrispr/internal/testutil"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()
	registry := common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")
	publicResolver := common.HexToAddress("0x00000000000000000000000000000000000000f1")
	target := common.HexToAddress("0x00000000000000000000000000000000000000b0")
	b := bindings.NewENS()

	word := func(addr common.Address) []byte { return common.LeftPadBytes(addr.Bytes(), 32) }

	t.Run("resolves through the name's resolver", func(t *testing.T) {
		chain := NewFakeChain(common.Address{})
		node := domain.Namehash("foo.eth")
		chain.Return(registry, b.PackResolver(node), word(publicResolver))
		chain.Return(publicResolver, b.PackAddr(node), word(target))

		addr, err := ens.NewResolver(chain).Resolve(ctx, "foo.eth", registry)
		require.NoError(t, err)
		assert.Equal(t, target, addr)
		assert.Equal(t, 1, chain.CallCount(publicResolver, b.PackAddr(node)))
	})

	t.Run("no resolver", func(t *testing.T) {
		chain := NewFakeChain(common.Address{})
		chain.Return(registry, b.PackResolver(domain.Namehash("foo.eth")), word(common.Address{}))

		_, err := ens.NewResolver(chain).Resolve(ctx, "foo.eth", registry)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, err.Error(), "ENS name foo.eth has no resolver")
	})

	t.Run("zero address", func(t *testing.T) {
		chain := NewFakeChain(common.Address{})
		node := domain.Namehash("foo.eth")
		chain.Return(registry, b.PackResolver(node), word(publicResolver))
		chain.Return(publicResolver, b.PackAddr(node), word(common.Address{}))

		_, err := ens.NewResolver(chain).Resolve(ctx, "foo.eth", registry)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("call failure", func(t *testing.T) {
		chain := NewFakeChain(common.Address{})
		_, err := ens.NewResolver(chain).Resolve(ctx, "foo.eth", registry)
		assert.ErrorContains(t, err, "failed to query resolver of foo.eth")
	})
}
