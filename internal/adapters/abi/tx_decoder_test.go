package abi

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/domain"
)

func TestDecodeAction(t *testing.T) {
	acl := common.HexToAddress("0x00000000000000000000000000000000000000ac")
	voting := common.HexToAddress("0x0000000000000000000000000000000000000101")
	tokens := common.HexToAddress("0x0000000000000000000000000000000000000102")
	role := crypto.Keccak256Hash([]byte("MINT_ROLE"))

	decoder := NewActionDecoder(map[common.Address]string{acl: "acl:0", voting: "voting:0"})

	t.Run("known method", func(t *testing.T) {
		data := bindings.NewACL().PackGrantPermission(voting, tokens, role)
		decoded := decoder.DecodeAction(domain.TransactionAction{To: acl, Data: data})

		assert.Equal(t, "acl:0", decoded.Label)
		assert.Equal(t, "grantPermission", decoded.Method)
		require.Len(t, decoded.Inputs, 3)
		assert.Equal(t, voting, decoded.Inputs[0].Value)
		assert.Equal(t, "address", decoded.Inputs[0].Type)
		assert.Equal(t,
			"acl:0.grantPermission("+voting.Hex()+", "+tokens.Hex()+", "+role.Hex()+")",
			decoded.FormatCompact())
	})

	t.Run("unknown method", func(t *testing.T) {
		decoded := decoder.DecodeAction(domain.TransactionAction{To: tokens, Data: []byte{0xa9, 0x05, 0x9c, 0xbb}})
		assert.Equal(t, "unknown", decoded.Method)
		assert.Equal(t, tokens.Hex(), decoded.Label)
		assert.Equal(t, tokens.Hex()+" <0xa9059cbb>", decoded.FormatCompact())
	})

	t.Run("forwarded call scripts are nested", func(t *testing.T) {
		inner := domain.TransactionAction{To: acl, Data: bindings.NewACL().PackGrantPermission(voting, tokens, role)}
		script := domain.EncodeCallScript([]domain.TransactionAction{inner})
		decoded := decoder.DecodeAction(domain.TransactionAction{To: voting, Data: bindings.NewForwarder().PackForward(script)})

		assert.Equal(t, "forward", decoded.Method)
		require.Len(t, decoded.Nested, 1)
		assert.Equal(t, "grantPermission", decoded.Nested[0].Method)
		assert.Equal(t, "acl:0", decoded.Nested[0].Label)
	})
}

func TestFormatValue(t *testing.T) {
	long := make([]byte, 40)
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "big int", value: big.NewInt(1000), want: "1000"},
		{name: "empty bytes", value: []byte{}, want: "0x"},
		{name: "short bytes", value: []byte{0xde, 0xad}, want: "0xdead"},
		{name: "long bytes", value: long, want: "0x00000000000000000000000000000000...(40 bytes)"},
		{name: "string", value: "hi", want: `"hi"`},
		{name: "long string", value: strings.Repeat("a", 60), want: strings.Repeat("a", 50) + "...(60 chars)"},
		{name: "bool", value: true, want: "true"},
		{name: "array", value: [3]uint16{1, 0, 0}, want: "[1,0,0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, ""))
		})
	}
}
