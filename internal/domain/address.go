package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// PredictProxyAddress returns the address of the contract deployer creates
// with the given nonce (keccak256(rlp([deployer, nonce]))[12:]).
func PredictProxyAddress(deployer common.Address, nonce uint64) common.Address {
	return crypto.CreateAddress(deployer, nonce)
}
