package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/lobintsev/evmcrispr/internal/config"
	domainconfig "github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// Backend is the subset of ethclient.Client the adapter uses
type Backend interface {
	ethereum.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
}

// Client implements interpreter.ChainClient on top of a JSON-RPC endpoint.
// The connection is opened on first use so commands that never touch the
// chain work without an RPC endpoint.
type Client struct {
	network *domainconfig.Network
	address common.Address

	mu      sync.Mutex
	backend Backend
	dial    func(ctx context.Context, url string) (Backend, error)
}

// NewClient creates a chain client for the configured network and identity
func NewClient(cfg *domainconfig.RuntimeConfig) (*Client, error) {
	c := &Client{
		network: cfg.Network,
		dial: func(ctx context.Context, url string) (Backend, error) {
			return ethclient.DialContext(ctx, url)
		},
	}

	switch {
	case cfg.PrivateKey != "":
		key, err := crypto.HexToECDSA(cfg.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		c.address = crypto.PubkeyToAddress(*key.Public().(*ecdsa.PublicKey))
	case cfg.From != nil:
		c.address = *cfg.From
	}

	return c, nil
}

// NewClientWithBackend creates a chain client bound to an existing backend
func NewClientWithBackend(backend Backend, address common.Address) *Client {
	return &Client{backend: backend, address: address}
}

// Address returns the account actions are produced for
func (c *Client) Address() common.Address {
	return c.address
}

func (c *Client) connect(ctx context.Context) (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil {
		return c.backend, nil
	}

	if c.network == nil || c.network.RPCURL == "" {
		name := "network"
		if c.network != nil {
			name = c.network.Name
		}
		return nil, fmt.Errorf("no RPC endpoint configured for %s: set --rpc-url or %s", name, config.RPCEnvVarName(name))
	}

	backend, err := c.dial(ctx, c.network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if c.network.ChainID != 0 && networkChainID.Uint64() != c.network.ChainID {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", c.network.ChainID, networkChainID.Uint64())
	}

	c.backend = backend
	return backend, nil
}

// ChainID returns the chain id of the connected network
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	if c.backend == nil && c.network != nil && c.network.ChainID != 0 {
		return new(big.Int).SetUint64(c.network.ChainID), nil
	}
	backend, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return backend.ChainID(ctx)
}

// NonceAt returns the transaction count of account at the latest block
func (c *Client) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	backend, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	nonce, err := backend.NonceAt(ctx, account, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce of %s: %w", account.Hex(), err)
	}
	return nonce, nil
}

// CallContract executes a read-only call
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	backend, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return backend.CallContract(ctx, msg, blockNumber)
}

var _ interpreter.ChainClient = (*Client)(nil)
