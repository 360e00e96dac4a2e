package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

// PredictAddressParams contains parameters for predicting proxy addresses.
// A nil Nonce is read from the chain.
type PredictAddressParams struct {
	Deployer common.Address
	Nonce    *uint64
	Count    int
}

// PredictedAddress is one CREATE address and the nonce it belongs to
type PredictedAddress struct {
	Nonce   uint64         `json:"nonce"`
	Address common.Address `json:"address"`
}

// PredictAddressResult contains the predicted addresses in nonce order
type PredictAddressResult struct {
	Deployer  common.Address     `json:"deployer"`
	Addresses []PredictedAddress `json:"addresses"`
}

// PredictAddress computes the addresses the next CREATE deployments of an
// account (usually a DAO kernel) will get.
type PredictAddress struct {
	nonces NonceReader
}

// NewPredictAddress creates a new PredictAddress use case
func NewPredictAddress(nonces NonceReader) *PredictAddress {
	return &PredictAddress{nonces: nonces}
}

// Run predicts the addresses
func (uc *PredictAddress) Run(ctx context.Context, params PredictAddressParams) (*PredictAddressResult, error) {
	count := params.Count
	if count <= 0 {
		count = 1
	}

	var nonce uint64
	if params.Nonce != nil {
		nonce = *params.Nonce
	} else {
		n, err := uc.nonces.NonceAt(ctx, params.Deployer)
		if err != nil {
			return nil, fmt.Errorf("failed to read nonce of %s: %w", params.Deployer.Hex(), err)
		}
		nonce = n
	}

	result := &PredictAddressResult{
		Deployer:  params.Deployer,
		Addresses: make([]PredictedAddress, 0, count),
	}
	for i := 0; i < count; i++ {
		result.Addresses = append(result.Addresses, PredictedAddress{
			Nonce:   nonce + uint64(i),
			Address: domain.PredictProxyAddress(params.Deployer, nonce+uint64(i)),
		})
	}
	return result, nil
}
