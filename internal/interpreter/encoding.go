package interpreter

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncodeCalldata packs values as a call to method: selector followed by the
// ABI-encoded arguments.
func EncodeCalldata(method abi.Method, values []any) ([]byte, error) {
	if len(values) != len(method.Inputs) {
		return nil, fmt.Errorf("wrong number of arguments for %s: expected %d, got %d",
			method.Sig, len(method.Inputs), len(values))
	}
	args := make([]any, len(values))
	for idx, input := range method.Inputs {
		converted, err := ConvertValue(input.Type, values[idx])
		if err != nil {
			return nil, fmt.Errorf("invalid argument %d (%s) of %s: %w", idx, input.Type.String(), method.Sig, err)
		}
		args[idx] = converted
	}
	packed, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, method.ID...), packed...), nil
}

// ConvertValue turns an evaluated script value into the Go type the abi
// package packs for t.
func ConvertValue(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.AddressTy:
		addr, ok := ToAddress(v)
		if !ok {
			return nil, fmt.Errorf("expected an address, but got %s", FormatValue(v))
		}
		return addr, nil
	case abi.BoolTy:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			if b == "true" || b == "false" {
				return b == "true", nil
			}
		}
		return nil, fmt.Errorf("expected a boolean, but got %s", FormatValue(v))
	case abi.StringTy:
		return ToString(v), nil
	case abi.UintTy, abi.IntTy:
		return convertInteger(t, v)
	case abi.BytesTy:
		return toBytes(v)
	case abi.FixedBytesTy:
		b, err := toBytes(v)
		if err != nil {
			return nil, err
		}
		if len(b) > t.Size {
			return nil, fmt.Errorf("expected at most %d bytes, but got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(common.RightPadBytes(b, t.Size)))
		return arr.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("expected a list, but got %s", FormatValue(v))
		}
		if t.T == abi.ArrayTy && len(items) != t.Size {
			return nil, fmt.Errorf("expected %d items, but got %d", t.Size, len(items))
		}
		var out reflect.Value
		if t.T == abi.SliceTy {
			out = reflect.MakeSlice(t.GetType(), len(items), len(items))
		} else {
			out = reflect.New(t.GetType()).Elem()
		}
		for idx, item := range items {
			converted, err := ConvertValue(*t.Elem, item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", idx, err)
			}
			out.Index(idx).Set(reflect.ValueOf(converted))
		}
		return out.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported abi type %s", t.String())
	}
}

func convertInteger(t abi.Type, v any) (any, error) {
	var n *big.Int
	switch val := v.(type) {
	case *big.Int:
		n = val
	case string:
		parsed, err := ParseNumber(val)
		if err != nil {
			return nil, fmt.Errorf("expected a number, but got %s", FormatValue(v))
		}
		n = parsed
	case bool:
		n = big.NewInt(0)
		if val {
			n = big.NewInt(1)
		}
	default:
		return nil, fmt.Errorf("expected a number, but got %s", FormatValue(v))
	}

	if t.T == abi.UintTy && n.Sign() < 0 {
		return nil, fmt.Errorf("negative value %s for %s", n, t.String())
	}
	bits := t.Size
	if t.T == abi.IntTy {
		bits--
	}
	if n.BitLen() > bits {
		return nil, fmt.Errorf("value %s overflows %s", n, t.String())
	}

	goType := t.GetType()
	if goType == reflect.TypeOf(&big.Int{}) {
		return new(big.Int).Set(n), nil
	}
	out := reflect.New(goType).Elem()
	if t.T == abi.UintTy {
		out.SetUint(n.Uint64())
	} else {
		out.SetInt(n.Int64())
	}
	return out.Interface(), nil
}

func toBytes(v any) ([]byte, error) {
	switch val := v.(type) {
	case hexutil.Bytes:
		return val, nil
	case []byte:
		return val, nil
	case common.Hash:
		return val.Bytes(), nil
	case common.Address:
		return val.Bytes(), nil
	case string:
		b, err := hexutil.Decode(val)
		if err != nil {
			return nil, fmt.Errorf("expected bytes, but got %s", FormatValue(v))
		}
		return b, nil
	}
	return nil, fmt.Errorf("expected bytes, but got %s", FormatValue(v))
}

// ParseFunctionSignature builds a method from a human readable signature
// such as `transfer(address,uint256)`. Tuple parameters are not supported.
func ParseFunctionSignature(sig string) (abi.Method, error) {
	sig = strings.TrimSpace(sig)
	sig = strings.TrimPrefix(sig, "function ")
	open := strings.Index(sig, "(")
	if open <= 0 || !strings.HasSuffix(sig, ")") {
		return abi.Method{}, fmt.Errorf("invalid function signature %s", sig)
	}
	name := sig[:open]
	params := strings.TrimSpace(sig[open+1 : len(sig)-1])

	var inputs abi.Arguments
	if params != "" {
		for idx, p := range strings.Split(params, ",") {
			fields := strings.Fields(p)
			if len(fields) == 0 {
				return abi.Method{}, fmt.Errorf("invalid function signature %s", sig)
			}
			if strings.HasPrefix(fields[0], "(") || strings.HasPrefix(fields[0], "tuple") {
				return abi.Method{}, fmt.Errorf("tuple parameters are not supported in %s", sig)
			}
			typ, err := abi.NewType(fields[0], "", nil)
			if err != nil {
				return abi.Method{}, fmt.Errorf("invalid parameter type %s: %w", fields[0], err)
			}
			argName := fmt.Sprintf("arg%d", idx)
			if len(fields) > 1 {
				argName = fields[len(fields)-1]
			}
			inputs = append(inputs, abi.Argument{Name: argName, Type: typ})
		}
	}
	return abi.NewMethod(name, name, abi.Function, "nonpayable", false, false, inputs, nil), nil
}
