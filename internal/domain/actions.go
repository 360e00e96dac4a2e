package domain

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Action is an encoded transaction intent or a request to switch the
// execution context. The order of a []Action is its execution order.
type Action interface {
	isAction()
}

// TransactionAction is a call to To with calldata Data and optional Value.
type TransactionAction struct {
	To    common.Address
	Data  []byte
	Value *big.Int
}

func (TransactionAction) isAction() {}

// ProviderAction asks the wallet provider to change context, e.g. network.
type ProviderAction struct {
	Method string
	Params []any
}

func (ProviderAction) isAction() {}

// IsProviderAction reports whether a is a ProviderAction.
func IsProviderAction(a Action) bool {
	switch a.(type) {
	case ProviderAction, *ProviderAction:
		return true
	}
	return false
}

// TransactionActions returns the transaction actions of actions and false if
// any action is of another kind.
func TransactionActions(actions []Action) ([]TransactionAction, bool) {
	txs := make([]TransactionAction, 0, len(actions))
	for _, a := range actions {
		switch tx := a.(type) {
		case TransactionAction:
			txs = append(txs, tx)
		case *TransactionAction:
			txs = append(txs, *tx)
		default:
			return nil, false
		}
	}
	return txs, true
}

func (a TransactionAction) MarshalJSON() ([]byte, error) {
	out := struct {
		Type  string         `json:"type"`
		To    common.Address `json:"to"`
		Data  hexutil.Bytes  `json:"data"`
		Value *hexutil.Big   `json:"value,omitempty"`
	}{
		Type: "transaction",
		To:   a.To,
		Data: a.Data,
	}
	if a.Value != nil && a.Value.Sign() > 0 {
		out.Value = (*hexutil.Big)(a.Value)
	}
	return json.Marshal(out)
}

func (a ProviderAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Method string `json:"method"`
		Params []any  `json:"params"`
	}{
		Type:   "provider",
		Method: a.Method,
		Params: a.Params,
	})
}

// SwitchChainAction builds the provider action requesting a network change.
func SwitchChainAction(chainID uint64) ProviderAction {
	return ProviderAction{
		Method: "wallet_switchEthereumChain",
		Params: []any{map[string]string{"chainId": hexutil.EncodeUint64(chainID)}},
	}
}
