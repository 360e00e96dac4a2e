package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// CallScriptSpecID is the EVM call script executor version prefix.
var CallScriptSpecID = []byte{0x00, 0x00, 0x00, 0x01}

// EncodeCallScript encodes actions as an aragonOS EVM call script:
// spec id followed by to (20 bytes) | uint32 calldata length | calldata.
func EncodeCallScript(actions []TransactionAction) []byte {
	size := len(CallScriptSpecID)
	for _, a := range actions {
		size += common.AddressLength + 4 + len(a.Data)
	}
	script := make([]byte, 0, size)
	script = append(script, CallScriptSpecID...)
	for _, a := range actions {
		script = append(script, a.To.Bytes()...)
		script = binary.BigEndian.AppendUint32(script, uint32(len(a.Data)))
		script = append(script, a.Data...)
	}
	return script
}

// DecodeCallScript is the inverse of EncodeCallScript.
func DecodeCallScript(script []byte) ([]TransactionAction, error) {
	if len(script) < len(CallScriptSpecID) {
		return nil, fmt.Errorf("call script too short: %d bytes", len(script))
	}
	for i, b := range CallScriptSpecID {
		if script[i] != b {
			return nil, fmt.Errorf("unknown call script spec id %x", script[:4])
		}
	}
	var actions []TransactionAction
	rest := script[len(CallScriptSpecID):]
	for len(rest) > 0 {
		if len(rest) < common.AddressLength+4 {
			return nil, fmt.Errorf("truncated call script entry")
		}
		to := common.BytesToAddress(rest[:common.AddressLength])
		n := binary.BigEndian.Uint32(rest[common.AddressLength : common.AddressLength+4])
		rest = rest[common.AddressLength+4:]
		if uint32(len(rest)) < n {
			return nil, fmt.Errorf("call script data for %s truncated", to.Hex())
		}
		data := make([]byte, n)
		copy(data, rest[:n])
		rest = rest[n:]
		actions = append(actions, TransactionAction{To: to, Data: data})
	}
	return actions, nil
}
