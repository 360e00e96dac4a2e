package abi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/domain"
)

// ActionDecoder turns transaction actions back into readable calls using the
// bundled governance ABIs
type ActionDecoder struct {
	abis   []*abi.ABI
	labels map[common.Address]string
}

// NewActionDecoder creates a decoder knowing the Kernel, ACL, Repo,
// Forwarder and ENS interfaces. Extra ABIs (app artifacts) are tried after.
func NewActionDecoder(labels map[common.Address]string, extra ...*abi.ABI) *ActionDecoder {
	d := &ActionDecoder{labels: labels}
	for _, md := range []*bind.MetaData{
		&bindings.KernelMetaData,
		&bindings.ACLMetaData,
		&bindings.ForwarderMetaData,
		&bindings.RepoMetaData,
		&bindings.ENSMetaData,
	} {
		parsed, err := md.ParseABI()
		if err != nil {
			continue
		}
		d.abis = append(d.abis, parsed)
	}
	d.abis = append(d.abis, extra...)
	if d.labels == nil {
		d.labels = map[common.Address]string{}
	}
	return d
}

// DecodedAction represents a human-readable transaction action
type DecodedAction struct {
	To      common.Address
	Label   string
	Method  string
	Inputs  []DecodedInput
	Value   *big.Int
	RawData string
	// Nested holds the actions of a forwarded call script
	Nested []*DecodedAction
}

// DecodedInput represents a decoded function input
type DecodedInput struct {
	Name  string
	Type  string
	Value any
}

// GetLabel returns the script name of an address, or its hex form
func (d *ActionDecoder) GetLabel(to common.Address) string {
	if label, ok := d.labels[to]; ok {
		return label
	}
	return to.Hex()
}

func (d *ActionDecoder) method(data []byte) *abi.Method {
	if len(data) < 4 {
		return nil
	}
	for _, a := range d.abis {
		if m, err := a.MethodById(data[:4]); err == nil {
			return m
		}
	}
	return nil
}

// DecodeAction decodes a transaction action. Calls to forward carry an EVM
// call script whose actions are decoded into Nested.
func (d *ActionDecoder) DecodeAction(action domain.TransactionAction) *DecodedAction {
	decoded := &DecodedAction{
		To:      action.To,
		Label:   d.GetLabel(action.To),
		Value:   action.Value,
		RawData: hexutil.Encode(action.Data),
		Method:  "unknown",
	}

	method := d.method(action.Data)
	if method == nil {
		return decoded
	}
	decoded.Method = method.RawName

	inputs, err := method.Inputs.Unpack(action.Data[4:])
	if err != nil {
		return decoded
	}
	for i, input := range method.Inputs {
		if i >= len(inputs) {
			break
		}
		decoded.Inputs = append(decoded.Inputs, DecodedInput{
			Name:  input.Name,
			Type:  input.Type.String(),
			Value: inputs[i],
		})
	}

	if method.RawName == "forward" && len(inputs) > 0 {
		if script, ok := inputs[0].([]byte); ok {
			if actions, err := domain.DecodeCallScript(script); err == nil {
				for _, a := range actions {
					decoded.Nested = append(decoded.Nested, d.DecodeAction(a))
				}
			}
		}
	}
	return decoded
}

// FormatCompact formats a decoded action as Label.method(args)
func (da *DecodedAction) FormatCompact() string {
	if da.Method == "unknown" {
		return fmt.Sprintf("%s <%s>", da.Label, FormatValue(hexutil.MustDecode(da.RawData), "bytes"))
	}
	args := make([]string, 0, len(da.Inputs))
	for _, in := range da.Inputs {
		args = append(args, FormatValue(in.Value, in.Type))
	}
	return fmt.Sprintf("%s.%s(%s)", da.Label, da.Method, strings.Join(args, ", "))
}

// FormatValue formats a decoded value for human display
func FormatValue(value any, valueType string) string {
	switch v := value.(type) {
	case common.Address:
		return v.Hex()
	case *big.Int:
		return v.String()
	case []byte:
		if len(v) == 0 {
			return "0x"
		}
		if len(v) <= 32 {
			return hexutil.Encode(v)
		}
		return fmt.Sprintf("%s...(%d bytes)", hexutil.Encode(v[:16]), len(v))
	case string:
		if len(v) > 50 {
			return fmt.Sprintf("%.50s...(%d chars)", v, len(v))
		}
		return fmt.Sprintf(`"%s"`, v)
	case bool:
		return fmt.Sprintf("%t", v)
	case [32]byte:
		return hexutil.Encode(v[:])
	default:
		if jsonBytes, err := json.Marshal(v); err == nil {
			jsonStr := string(jsonBytes)
			if len(jsonStr) > 100 {
				return fmt.Sprintf("%.100s...(%d chars)", jsonStr, len(jsonStr))
			}
			return jsonStr
		}
		return fmt.Sprintf("%v", v)
	}
}
