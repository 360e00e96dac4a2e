package domain

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Network describes a chain the registry query client can serve.
type Network struct {
	ChainID     uint64
	Name        string
	SubgraphURL string
	AragonENS   common.Address
}

var networks = map[uint64]Network{
	1: {
		ChainID:     1,
		Name:        "mainnet",
		SubgraphURL: "https://api.thegraph.com/subgraphs/name/aragon/aragon-mainnet",
		AragonENS:   common.HexToAddress("0x314159265dd8dbb310642f98f50c066173c1259b"),
	},
	4: {
		ChainID:     4,
		Name:        "rinkeby",
		SubgraphURL: "https://api.thegraph.com/subgraphs/name/1hive/aragon-rinkeby",
		AragonENS:   common.HexToAddress("0x98df287b6c145399aaa709692c8d308357bc085d"),
	},
	100: {
		ChainID:     100,
		Name:        "gnosis",
		SubgraphURL: "https://api.thegraph.com/subgraphs/name/1hive/aragon-xdai",
		AragonENS:   common.HexToAddress("0xaafca6b0c89521752e559650206d7c925fd0e530"),
	},
	137: {
		ChainID:     137,
		Name:        "polygon",
		SubgraphURL: "https://api.thegraph.com/subgraphs/name/1hive/aragon-polygon",
		AragonENS:   common.HexToAddress("0x3c70a0190d09f34519e6e218364451add21b7d4b"),
	},
}

// LookupNetwork returns the network registered for chainID.
func LookupNetwork(chainID uint64) (Network, bool) {
	n, ok := networks[chainID]
	return n, ok
}

// Networks returns every supported network ordered by chain id.
func Networks() []Network {
	out := make([]Network, 0, len(networks))
	for _, n := range networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}
