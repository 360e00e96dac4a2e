package interpreter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

// FormatValue renders an evaluated value the way scripts write it. Strings
// are quoted so error messages show the offending literal unambiguously.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return `"` + val + `"`
	case *big.Int:
		return val.String()
	case common.Address:
		return val.Hex()
	case common.Hash:
		return val.Hex()
	case hexutil.Bytes:
		return val.String()
	case []byte:
		return hexutil.Encode(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case []domain.Action:
		return fmt.Sprintf("<%d actions>", len(val))
	case Module:
		return "<module " + val.ContextualName() + ">"
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, FormatValue(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ToAddress coerces an evaluated value to an address. Strings must be
// well-formed hex addresses.
func ToAddress(v any) (common.Address, bool) {
	switch val := v.(type) {
	case common.Address:
		return val, true
	case string:
		if common.IsHexAddress(val) {
			return common.HexToAddress(val), true
		}
	}
	return common.Address{}, false
}

// ToString returns v unquoted, as print and option values expect it.
func ToString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return FormatValue(v)
}
