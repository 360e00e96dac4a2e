package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command in an empty project directory
func executeCommand(t *testing.T, files map[string]string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	t.Chdir(dir)
	t.Setenv("EVMCRISPR_NETWORK", "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "evmcrispr dev (commit none, built unknown")

	out, err = executeCommand(t, nil, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}

func TestNetworksCmd(t *testing.T) {
	out, err := executeCommand(t, map[string]string{"evmcrispr.toml": `network = "gnosis"`}, "networks", "--json")
	require.NoError(t, err)

	var result struct {
		Networks []struct {
			ChainID uint64 `json:"chainId"`
			Name    string `json:"name"`
			Current bool   `json:"current"`
		} `json:"networks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Networks, 4)

	var current []string
	for _, n := range result.Networks {
		if n.Current {
			current = append(current, n.Name)
		}
	}
	assert.Equal(t, []string{"gnosis"}, current)
}

func TestCheckCmd(t *testing.T) {
	t.Run("valid script", func(t *testing.T) {
		script := `
body:
  - command: set
    args: [{identifier: $amount}, 1e18]
  - command: print
    args: [{identifier: $amount}]
`
		out, err := executeCommand(t, map[string]string{"script.yaml": script}, "check", "script.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "2 statements checked, no problems found")
	})

	t.Run("invalid script", func(t *testing.T) {
		script := `
body:
  - command: set
    args: [{identifier: $amount}]
  - command: switch
    args: [1, 2]
`
		out, err := executeCommand(t, map[string]string{"script.yaml": script}, "check", "script.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "script script.yaml is invalid")
		assert.Contains(t, out, "Expected exactly 2 arguments, but got 1")
		assert.Contains(t, out, "Expected exactly 1 argument, but got 2")
		assert.Contains(t, out, "2 problems found")
	})
}

func TestRunCmd(t *testing.T) {
	script := `
body:
  - command: set
    args: [{identifier: $receiver}, 0x00000000000000000000000000000000000000b0]
  - command: exec
    args:
      - 0x00000000000000000000000000000000000000a0
      - "transfer(address,uint256)"
      - {identifier: $receiver}
      - {binary: {op: "*", left: 2, right: 1e18}}
    opts:
      value: 1
  - command: print
    args: ["done"]
`
	out, err := executeCommand(t, map[string]string{"script.yaml": script}, "run", "script.yaml", "--json", "--from", "0x00000000000000000000000000000000000000f0")
	require.NoError(t, err)

	// print output goes to stderr, which shares the buffer
	assert.Contains(t, out, "done\n")
	jsonStart := bytes.IndexByte([]byte(out), '{')
	require.GreaterOrEqual(t, jsonStart, 0)

	var result struct {
		ChainID uint64 `json:"chainId"`
		From    string `json:"from"`
		Actions []struct {
			Type  string `json:"type"`
			To    string `json:"to"`
			Data  string `json:"data"`
			Value string `json:"value"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out[jsonStart:]), &result))

	assert.Equal(t, uint64(1), result.ChainID)
	assert.Equal(t, common.HexToAddress("0xf0"), common.HexToAddress(result.From))
	require.Len(t, result.Actions, 1)
	assert.Equal(t, "transaction", result.Actions[0].Type)
	assert.Equal(t, common.HexToAddress("0xa0"), common.HexToAddress(result.Actions[0].To))
	assert.Equal(t, "0xa9059cbb", result.Actions[0].Data[:10])
	assert.Equal(t, "0x1", result.Actions[0].Value)
}

func TestPredictCmd(t *testing.T) {
	kernel := common.HexToAddress("0x00000000000000000000000000000000000000da")

	out, err := executeCommand(t, nil, "predict", kernel.Hex(), "--nonce", "5", "--count", "2", "--json")
	require.NoError(t, err)

	var result struct {
		Addresses []struct {
			Nonce   uint64         `json:"nonce"`
			Address common.Address `json:"address"`
		} `json:"addresses"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Addresses, 2)
	assert.Equal(t, uint64(5), result.Addresses[0].Nonce)
	assert.Equal(t, crypto.CreateAddress(kernel, 5), result.Addresses[0].Address)
	assert.Equal(t, crypto.CreateAddress(kernel, 6), result.Addresses[1].Address)

	_, err = executeCommand(t, nil, "predict", "kernel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid deployer address "kernel"`)
}
