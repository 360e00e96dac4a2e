// Package testutil provides in-memory collaborators for interpreter and
// module tests.
package testutil

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

// CallHandler answers an eth_call with the given calldata.
type CallHandler func(data []byte) ([]byte, error)

type callKey struct {
	to       common.Address
	selector string
}

// FakeChain is a ChainClient answering calls from registered handlers.
// Calls without a handler fail like a revert.
type FakeChain struct {
	From       common.Address
	ID         uint64
	Nonces     map[common.Address]uint64
	Calls      []ethereum.CallMsg
	NonceReads map[common.Address]int

	handlers map[callKey]CallHandler
}

func NewFakeChain(from common.Address) *FakeChain {
	return &FakeChain{
		From:       from,
		ID:         1,
		Nonces:     map[common.Address]uint64{},
		NonceReads: map[common.Address]int{},
		handlers:   map[callKey]CallHandler{},
	}
}

// Handle registers h for calls to `to` whose calldata starts with selector.
func (f *FakeChain) Handle(to common.Address, selector []byte, h CallHandler) {
	f.handlers[callKey{to: to, selector: hexutil.Encode(selector[:4])}] = h
}

// Return registers a fixed return value.
func (f *FakeChain) Return(to common.Address, selector []byte, out []byte) {
	f.Handle(to, selector, func([]byte) ([]byte, error) { return out, nil })
}

// CallCount counts calls made to `to` with selector.
func (f *FakeChain) CallCount(to common.Address, selector []byte) int {
	n := 0
	for _, c := range f.Calls {
		if c.To != nil && *c.To == to && len(c.Data) >= 4 && hexutil.Encode(c.Data[:4]) == hexutil.Encode(selector[:4]) {
			n++
		}
	}
	return n
}

func (f *FakeChain) Address() common.Address {
	return f.From
}

func (f *FakeChain) ChainID(ctx context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(f.ID), nil
}

func (f *FakeChain) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.NonceReads[account]++
	return f.Nonces[account], nil
}

func (f *FakeChain) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.Calls = append(f.Calls, msg)
	if msg.To == nil || len(msg.Data) < 4 {
		return nil, fmt.Errorf("execution reverted")
	}
	h, ok := f.handlers[callKey{to: *msg.To, selector: hexutil.Encode(msg.Data[:4])}]
	if !ok {
		return nil, fmt.Errorf("execution reverted")
	}
	return h(msg.Data)
}

// FakeRegistry serves repos and organization apps from maps.
type FakeRegistry struct {
	// Repos is keyed by name.registry, e.g. voting.aragonpm.eth
	Repos     map[string]*domain.Repo
	Orgs      map[common.Address][]domain.OrganizationApp
	RepoCalls int
	OrgCalls  int
}

func NewFakeRegistry() *FakeRegistry {
	return &FakeRegistry{
		Repos: map[string]*domain.Repo{},
		Orgs:  map[common.Address][]domain.OrganizationApp{},
	}
}

func (r *FakeRegistry) Repo(ctx context.Context, name, registry string) (*domain.Repo, error) {
	r.RepoCalls++
	repo, ok := r.Repos[name+"."+registry]
	if !ok {
		return nil, domain.NewNotFoundError("Repo %s.%s not found", name, registry)
	}
	return repo, nil
}

func (r *FakeRegistry) OrganizationApps(ctx context.Context, dao common.Address) ([]domain.OrganizationApp, error) {
	r.OrgCalls++
	apps, ok := r.Orgs[dao]
	if !ok {
		return nil, domain.NewNotFoundError("Organization apps not found")
	}
	return apps, nil
}

// FakeFetcher serves artifacts keyed by content URI.
type FakeFetcher struct {
	Artifacts map[string]*domain.Artifact
	Fetches   map[string]int
}

func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		Artifacts: map[string]*domain.Artifact{},
		Fetches:   map[string]int{},
	}
}

func (f *FakeFetcher) Fetch(ctx context.Context, contentURI string) (*domain.Artifact, error) {
	f.Fetches[contentURI]++
	a, ok := f.Artifacts[contentURI]
	if !ok {
		return nil, domain.NewNotFoundError("artifact %s not found", contentURI)
	}
	return a, nil
}

// TotalFetches sums fetches over every content URI.
func (f *FakeFetcher) TotalFetches() int {
	n := 0
	for _, c := range f.Fetches {
		n += c
	}
	return n
}

// FakeResolver resolves ENS names from a map, ignoring the registry.
type FakeResolver struct {
	Names    map[string]common.Address
	Resolved []string
}

func NewFakeResolver() *FakeResolver {
	return &FakeResolver{Names: map[string]common.Address{}}
}

func (r *FakeResolver) Resolve(ctx context.Context, name string, registry common.Address) (common.Address, error) {
	r.Resolved = append(r.Resolved, name)
	addr, ok := r.Names[strings.ToLower(name)]
	if !ok {
		return common.Address{}, domain.NewNotFoundError("ENS name %s not found", name)
	}
	return addr, nil
}
