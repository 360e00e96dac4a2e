package aragonos_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	. "github.com/lobintsev/evmcrispr/internal/testutil"
)

const receiver = "0x00000000000000000000000000000000000000b0"

func transfer() *ast.CommandExpression {
	return Cmd("exec", Addr(receiver), Str("transfer(address,uint256)"), Addr(receiver), Num("1e18"))
}

// unwrapForward decodes the call script a forward(bytes) call carries.
func unwrapForward(t *testing.T, tx domain.TransactionAction) []domain.TransactionAction {
	t.Helper()
	args := unpackCall(t, &bindings.ForwarderMetaData, "forward", tx.Data)
	script, err := domain.DecodeCallScript(args[0].([]byte))
	require.NoError(t, err)
	return script
}

func TestForward(t *testing.T) {
	t.Run("first forwarder is the innermost", func(t *testing.T) {
		f := newFixture(t)
		actions, err := f.run(connect(
			Cmd("forward", Ident("token-manager"), Ident("voting"), Block(transfer(), transfer())),
		))
		require.NoError(t, err)
		require.Len(t, actions, 1)

		outer := txAt(t, actions, 0)
		assert.Equal(t, votingAddr, outer.To)

		middle := unwrapForward(t, outer)
		require.Len(t, middle, 1)
		assert.Equal(t, tokensAddr, middle[0].To)

		inner := unwrapForward(t, middle[0])
		require.Len(t, inner, 2)
		for _, tx := range inner {
			assert.Equal(t, common.HexToAddress(receiver), tx.To)
			assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, tx.Data[:4])
		}
	})

	t.Run("forwarders given as addresses", func(t *testing.T) {
		f := newFixture(t)
		actions, err := f.run(Cmd("ar:forward", Addr(votingAddr.Hex()), Block(transfer())))
		require.NoError(t, err)
		assert.Equal(t, votingAddr, txAt(t, actions, 0).To)
	})

	t.Run("invalid forwarders are reported together", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.run(connect(
			Cmd("forward", Ident("foo"), Ident("voting"), Ident("bar"), Block(transfer())),
		))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCommand))
		assert.Contains(t, err.Error(), "foo, bar are not valid forwarder address")
	})

	t.Run("malformed forwarder addresses are reported together", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.run(connect(
			Cmd("forward", Addr(votingAddr.Hex()), Addr("0x1234"), Addr("0xzz"), Block(transfer())),
		))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCommand))
		assert.Contains(t, err.Error(), "0x1234, 0xzz are not valid forwarder address")
	})

	t.Run("context on a forwarder with context", func(t *testing.T) {
		f := newFixture(t)
		fwd := bindings.NewForwarder()
		f.chain.Return(votingAddr, fwd.PackForwarderType(), common.LeftPadBytes([]byte{2}, 32))

		actions, err := f.run(connect(
			WithOpt(Cmd("forward", Ident("voting"), Block(transfer())), "context", Str("Pay the designer")),
		))
		require.NoError(t, err)
		tx := txAt(t, actions, 0)
		assert.Equal(t, votingAddr, tx.To)

		args := unpackCall(t, &bindings.ForwarderMetaData, "forward0", tx.Data)
		script, err := domain.DecodeCallScript(args[0].([]byte))
		require.NoError(t, err)
		require.Len(t, script, 1)
		assert.Equal(t, []byte("Pay the designer"), args[1])
	})

	t.Run("context only reaches the innermost forwarder", func(t *testing.T) {
		f := newFixture(t)
		fwd := bindings.NewForwarder()
		f.chain.Return(votingAddr, fwd.PackForwarderType(), common.LeftPadBytes([]byte{2}, 32))
		f.chain.Return(tokensAddr, fwd.PackForwarderType(), common.LeftPadBytes([]byte{2}, 32))

		actions, err := f.run(connect(
			WithOpt(Cmd("forward", Ident("voting"), Ident("token-manager"), Block(transfer())), "context", Str("why")),
		))
		require.NoError(t, err)

		outer := unpackCall(t, &bindings.ForwarderMetaData, "forward0", txAt(t, actions, 0).Data)
		assert.Empty(t, outer[1])
		middle, err := domain.DecodeCallScript(outer[0].([]byte))
		require.NoError(t, err)
		inner := unpackCall(t, &bindings.ForwarderMetaData, "forward0", middle[0].Data)
		assert.Equal(t, []byte("why"), inner[1])
	})

	t.Run("context on a forwarder without context", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.run(connect(
			WithOpt(Cmd("forward", Ident("token-manager"), Block(transfer())), "context", Str("why")),
		))
		assert.ErrorContains(t, err, "doesn't support a context")
	})

	t.Run("rejects network switches", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.run(connect(
			Cmd("forward", Ident("voting"), Block(Cmd("switch", Num("100")))),
		))
		assert.ErrorContains(t, err, "can't switch networks")
	})

	t.Run("needs a block", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.run(connect(Cmd("forward", Ident("voting"), Ident("token-manager"))))
		assert.ErrorContains(t, err, "last argument should be a set of commands")
	})
}
