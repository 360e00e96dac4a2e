package ens

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/modules/aragonos"
	"github.com/lobintsev/evmcrispr/internal/modules/std"
)

// Resolver resolves ENS names through the registry and resolver contracts
type Resolver struct {
	caller ethereum.ContractCaller
	ens    *bindings.ENS
}

// NewResolver creates a resolver issuing calls through caller
func NewResolver(caller ethereum.ContractCaller) *Resolver {
	return &Resolver{caller: caller, ens: bindings.NewENS()}
}

// Resolve returns the address a name points to. Names without a resolver or
// resolving to the zero address fail with domain.ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, name string, registry common.Address) (common.Address, error) {
	node := domain.Namehash(name)

	out, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &registry, Data: r.ens.PackResolver(node)}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to query resolver of %s: %w", name, err)
	}
	resolver, err := r.ens.UnpackResolver(out)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to decode resolver of %s: %w", name, err)
	}
	if resolver == (common.Address{}) {
		return common.Address{}, domain.NewNotFoundError("ENS name %s has no resolver", name)
	}

	out, err = r.caller.CallContract(ctx, ethereum.CallMsg{To: &resolver, Data: r.ens.PackAddr(node)}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	addr, err := r.ens.UnpackAddr(out)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to decode address of %s: %w", name, err)
	}
	if addr == (common.Address{}) {
		return common.Address{}, domain.NewNotFoundError("ENS name %s resolves to the zero address", name)
	}
	return addr, nil
}

var (
	_ aragonos.NameResolver = (*Resolver)(nil)
	_ std.NameResolver      = (*Resolver)(nil)
)
