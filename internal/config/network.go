package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/config"
)

// DefaultNetwork is used when neither a flag nor the project file names one.
const DefaultNetwork = "mainnet"

// resolveNetwork resolves the target network from flags, the project file and
// the built-in network table. The RPC endpoint comes from --rpc-url, then the
// project file, then <NAME>_RPC_URL.
func resolveNetwork(v *viper.Viper, file *config.ProjectFile) (*config.Network, error) {
	name := firstNonEmpty(v.GetString("network"), fileValue(file, func(f *config.ProjectFile) string { return f.Network }), DefaultNetwork)

	known, err := LookupNetwork(name)
	if err != nil {
		return nil, err
	}

	network := &config.Network{
		ChainID:     known.ChainID,
		Name:        known.Name,
		SubgraphURL: known.SubgraphURL,
	}

	var rpcURL string
	if file != nil {
		rpcURL = file.RPCEndpoints[known.Name]
		if url := file.Subgraphs[known.Name]; url != "" {
			network.SubgraphURL = url
		}
	}
	network.RPCURL = firstNonEmpty(v.GetString("rpc_url"), rpcURL, os.Getenv(RPCEnvVarName(known.Name)))

	return network, nil
}

// LookupNetwork finds a supported network by name or decimal chain id.
func LookupNetwork(nameOrID string) (domain.Network, error) {
	if id, err := strconv.ParseUint(nameOrID, 10, 64); err == nil {
		if n, ok := domain.LookupNetwork(id); ok {
			return n, nil
		}
		return domain.Network{}, unsupportedNetwork(nameOrID)
	}

	n, ok := lo.Find(domain.Networks(), func(n domain.Network) bool {
		return strings.EqualFold(n.Name, nameOrID)
	})
	if !ok {
		return domain.Network{}, unsupportedNetwork(nameOrID)
	}
	return n, nil
}

// RPCEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: mainnet -> MAINNET_RPC_URL, gnosis -> GNOSIS_RPC_URL
func RPCEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

func unsupportedNetwork(name string) error {
	ids := lo.Map(domain.Networks(), func(n domain.Network, _ int) string {
		return strconv.FormatUint(n.ChainID, 10)
	})
	return fmt.Errorf("network %s not supported, use one of %s", name, strings.Join(ids, ", "))
}
