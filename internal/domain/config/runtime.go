package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ConfigSource string // "evmcrispr.toml" or "" when no project file exists

	// Context settings
	Network *Network

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// External services
	IPFSGateway string
	// ENSRegistry overrides the Aragon ENS registry of the network, nil when unset
	ENSRegistry *common.Address

	// Identity actions are produced for. PrivateKey wins over From.
	From       *common.Address
	PrivateKey string

	File *ProjectFile
}

// Network represents the resolved target chain
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl,omitempty"`
	SubgraphURL string `json:"subgraphUrl"`
}

// ProjectFile is the optional evmcrispr.toml at the project root
type ProjectFile struct {
	Network      string            `toml:"network"`
	IPFSGateway  string            `toml:"ipfs_gateway"`
	From         string            `toml:"from"`
	RPCEndpoints map[string]string `toml:"rpc_endpoints"`
	Subgraphs    map[string]string `toml:"subgraphs"`
	ENS          map[string]string `toml:"ens"`
}
