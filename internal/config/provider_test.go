package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newViper(root string) *viper.Viper {
	v := viper.New()
	v.Set("project_root", root)
	return v
}

func TestProvider(t *testing.T) {
	t.Run("defaults without project file", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("MAINNET_RPC_URL", "http://localhost:8545")

		cfg, err := Provider(newViper(root))
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Empty(t, cfg.ConfigSource)
		assert.Nil(t, cfg.File)
		assert.Equal(t, DefaultIPFSGateway, cfg.IPFSGateway)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, uint64(1), cfg.Network.ChainID)
		assert.Equal(t, "http://localhost:8545", cfg.Network.RPCURL)
		assert.Nil(t, cfg.ENSRegistry)
		assert.Nil(t, cfg.From)
	})

	t.Run("project file with env expansion", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("GNOSIS_NODE", "https://rpc.gnosis.test")
		writeFile(t, root, ProjectFileName, `
network = "gnosis"
ipfs_gateway = "https://gateway.test/ipfs"
from = "0x00000000000000000000000000000000000000aa"

[rpc_endpoints]
gnosis = "${GNOSIS_NODE}"

[subgraphs]
gnosis = "https://subgraph.test/aragon"

[ens]
gnosis = "0x00000000000000000000000000000000000000e5"
`)

		cfg, err := Provider(newViper(root))
		require.NoError(t, err)

		assert.Equal(t, ProjectFileName, cfg.ConfigSource)
		assert.Equal(t, "https://gateway.test/ipfs/", cfg.IPFSGateway)
		assert.Equal(t, uint64(100), cfg.Network.ChainID)
		assert.Equal(t, "https://rpc.gnosis.test", cfg.Network.RPCURL)
		assert.Equal(t, "https://subgraph.test/aragon", cfg.Network.SubgraphURL)
		require.NotNil(t, cfg.From)
		assert.Equal(t, common.HexToAddress("0xaa"), *cfg.From)
		require.NotNil(t, cfg.ENSRegistry)
		assert.Equal(t, common.HexToAddress("0xe5"), *cfg.ENSRegistry)
	})

	t.Run("flags override project file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFileName, `network = "gnosis"`)

		v := newViper(root)
		v.Set("network", "137")
		v.Set("rpc_url", "http://flag.test")
		v.Set("private_key", "0xabc")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "polygon", cfg.Network.Name)
		assert.Equal(t, "http://flag.test", cfg.Network.RPCURL)
		assert.Equal(t, "abc", cfg.PrivateKey)
	})

	t.Run("dotenv feeds rpc lookup", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".env", "RINKEBY_RPC_URL=http://dotenv.test\n")
		t.Cleanup(func() { os.Unsetenv("RINKEBY_RPC_URL") })

		v := newViper(root)
		v.Set("network", "rinkeby")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "http://dotenv.test", cfg.Network.RPCURL)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name    string
			set     map[string]string
			wantErr string
		}{
			{"unsupported network", map[string]string{"network": "5"}, "network 5 not supported, use one of 1, 4, 100, 137"},
			{"unknown network name", map[string]string{"network": "goerli"}, "network goerli not supported"},
			{"bad from", map[string]string{"from": "0x12"}, `invalid from address "0x12"`},
			{"bad ens", map[string]string{"ens": "registry"}, `invalid ENS registry address "registry"`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				v := newViper(t.TempDir())
				for k, val := range tt.set {
					v.Set(k, val)
				}
				_, err := Provider(v)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})

	t.Run("malformed project file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFileName, `network = `)

		_, err := Provider(newViper(root))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse evmcrispr.toml")
	})
}

func TestRPCEnvVarName(t *testing.T) {
	assert.Equal(t, "MAINNET_RPC_URL", RPCEnvVarName("mainnet"))
	assert.Equal(t, "ARBITRUM_SEPOLIA_RPC_URL", RPCEnvVarName("arbitrum-sepolia"))
}
