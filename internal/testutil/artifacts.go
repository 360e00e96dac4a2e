package testutil

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

// VotingABI is a trimmed Aragon Voting interface.
const VotingABI = `[
	{"type":"function","name":"initialize","inputs":[{"name":"_token","type":"address"},{"name":"_supportRequiredPct","type":"uint64"},{"name":"_minAcceptQuorumPct","type":"uint64"},{"name":"_voteTime","type":"uint64"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"newVote","inputs":[{"name":"_executionScript","type":"bytes"},{"name":"_metadata","type":"string"}],"outputs":[{"name":"voteId","type":"uint256"}],"stateMutability":"nonpayable"}
]`

// VaultABI is a trimmed Aragon Vault interface.
const VaultABI = `[
	{"type":"function","name":"initialize","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"transfer","inputs":[{"name":"_token","type":"address"},{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"}
]`

// Artifact builds an artifact from an ABI and role ids. Role hashes are
// keccak256(id) as published by aragonPM.
func Artifact(appName, abiJSON string, roleIDs ...string) *domain.Artifact {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		panic(err)
	}
	roles := make([]domain.Role, 0, len(roleIDs))
	for _, id := range roleIDs {
		roles = append(roles, domain.Role{Name: id, ID: id, Bytes: crypto.Keccak256Hash([]byte(id))})
	}
	return &domain.Artifact{AppName: appName, ABI: parsed, Roles: roles}
}
