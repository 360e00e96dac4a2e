package usecase

import (
	"context"
	"os"

	"github.com/samber/lo"

	"github.com/lobintsev/evmcrispr/internal/config"
	"github.com/lobintsev/evmcrispr/internal/domain"
	domainconfig "github.com/lobintsev/evmcrispr/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// NetworkStatus represents a supported network and how it is configured
type NetworkStatus struct {
	ChainID       uint64 `json:"chainId"`
	Name          string `json:"name"`
	SubgraphURL   string `json:"subgraphUrl"`
	AragonENS     string `json:"aragonEns"`
	RPCConfigured bool   `json:"rpcConfigured"`
	Current       bool   `json:"current"`
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus `json:"networks"`
}

// ListNetworks is a use case for listing supported networks
type ListNetworks struct {
	config *domainconfig.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *domainconfig.RuntimeConfig) *ListNetworks {
	return &ListNetworks{config: cfg}
}

// Run executes the list networks use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networks := lo.Map(domain.Networks(), func(n domain.Network, _ int) NetworkStatus {
		status := NetworkStatus{
			ChainID:     n.ChainID,
			Name:        n.Name,
			SubgraphURL: n.SubgraphURL,
			AragonENS:   n.AragonENS.Hex(),
		}

		if uc.config.File != nil && uc.config.File.RPCEndpoints[n.Name] != "" {
			status.RPCConfigured = true
		}
		if os.Getenv(config.RPCEnvVarName(n.Name)) != "" {
			status.RPCConfigured = true
		}

		if current := uc.config.Network; current != nil && current.ChainID == n.ChainID {
			status.Current = true
			status.SubgraphURL = current.SubgraphURL
			status.RPCConfigured = status.RPCConfigured || current.RPCURL != ""
		}
		return status
	})

	return &ListNetworksResult{Networks: networks}, nil
}
