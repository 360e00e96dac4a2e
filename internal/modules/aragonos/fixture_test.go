package aragonos_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
	"github.com/lobintsev/evmcrispr/internal/modules/aragonos"
	"github.com/lobintsev/evmcrispr/internal/modules/std"
	. "github.com/lobintsev/evmcrispr/internal/testutil"
)

var (
	signer       = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	daoAddr      = common.HexToAddress("0x00000000000000000000000000000000000000d0")
	aclAddr      = common.HexToAddress("0x00000000000000000000000000000000000000ac")
	votingAddr   = common.HexToAddress("0x0000000000000000000000000000000000000101")
	tokensAddr   = common.HexToAddress("0x0000000000000000000000000000000000000102")
	votingCode   = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	votingCodeV2 = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	tokensCode   = common.HexToAddress("0x00000000000000000000000000000000000000c4")
	vaultCode    = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	vaultRepo    = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	votingRepo   = common.HexToAddress("0x00000000000000000000000000000000000000e2")
)

const daoKernelNonce = 5

type fixture struct {
	chain    *FakeChain
	registry *FakeRegistry
	fetcher  *FakeFetcher
	resolver *FakeResolver
	interp   *interpreter.Interpreter
	out      *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		chain:    NewFakeChain(signer),
		registry: NewFakeRegistry(),
		fetcher:  NewFakeFetcher(),
		resolver: NewFakeResolver(),
		out:      &bytes.Buffer{},
	}

	kernel := bindings.NewKernel()
	repo := bindings.NewRepo()

	f.chain.Nonces[daoAddr] = daoKernelNonce
	f.chain.Return(daoAddr, kernel.PackAcl(), common.LeftPadBytes(aclAddr.Bytes(), 32))

	f.registry.Orgs[daoAddr] = []domain.OrganizationApp{
		{Address: daoAddr, Name: "kernel", RegistryName: domain.DefaultRegistry},
		{
			Address:      votingAddr,
			Name:         "voting",
			RegistryName: domain.DefaultRegistry,
			CodeAddress:  votingCode,
			ContentURI:   "ipfs:voting",
			Roles: []domain.RoleGrant{{
				RoleHash: crypto.Keccak256Hash([]byte("CREATE_VOTES_ROLE")),
				Manager:  votingAddr,
				Grantees: []common.Address{tokensAddr},
			}},
		},
		{
			Address:      tokensAddr,
			Name:         "token-manager",
			RegistryName: domain.DefaultRegistry,
			CodeAddress:  tokensCode,
			ContentURI:   "ipfs:token-manager",
		},
	}
	f.registry.Repos["voting.aragonpm.eth"] = &domain.Repo{
		Name:         "voting",
		RegistryName: domain.DefaultRegistry,
		Address:      votingRepo,
		LastVersion:  domain.RepoVersion{Version: "2.0.0", CodeAddress: votingCodeV2, ContentURI: "ipfs:voting2"},
	}

	f.fetcher.Artifacts["ipfs:voting"] = Artifact("voting.aragonpm.eth", VotingABI, "CREATE_VOTES_ROLE", "MODIFY_QUORUM_ROLE")
	f.fetcher.Artifacts["ipfs:voting2"] = Artifact("voting.aragonpm.eth", VotingABI, "CREATE_VOTES_ROLE", "MODIFY_QUORUM_ROLE")
	f.fetcher.Artifacts["ipfs:token-manager"] = Artifact("token-manager.aragonpm.eth", VaultABI, "MINT_ROLE")
	f.fetcher.Artifacts["ipfs:vault"] = Artifact("vault.aragonpm.eth", VaultABI, "TRANSFER_ROLE")

	f.resolver.Names["vault.aragonpm.eth"] = vaultRepo
	f.resolver.Names["voting.aragonpm.eth"] = votingRepo
	f.chain.Return(vaultRepo, repo.PackGetLatest(), repoVersion(t, "getLatest", vaultCode, "ipfs:vault"))
	f.chain.Return(votingRepo, repo.PackGetLatest(), repoVersion(t, "getLatest", votingCodeV2, "ipfs:voting2"))
	f.chain.Return(votingRepo, repo.PackGetBySemanticVersion([3]uint16{1, 0, 0}), repoVersion(t, "getBySemanticVersion", votingCode, "ipfs:voting"))

	session := interpreter.NewSession(f.chain, f.fetcher,
		interpreter.WithOutput(f.out),
		interpreter.WithModule(std.ModuleName, std.New(f.resolver)),
		interpreter.WithModule(aragonos.ModuleName, aragonos.New(f.registry, f.resolver)),
	)
	i, err := interpreter.New(session)
	require.NoError(t, err)
	f.interp = i
	return f
}

// run interprets body after loading the module as `ar`.
func (f *fixture) run(body ...*ast.CommandExpression) ([]domain.Action, error) {
	load := Cmd("load", As(Ident("aragonos"), Ident("ar")))
	return f.interp.Interpret(context.Background(), Program(append([]*ast.CommandExpression{load}, body...)...))
}

func (f *fixture) module(t *testing.T) *aragonos.AragonOS {
	t.Helper()
	m, ok := f.interp.Session().Module("ar")
	require.True(t, ok)
	return m.(*aragonos.AragonOS)
}

func connect(body ...*ast.CommandExpression) *ast.CommandExpression {
	return Cmd("ar:connect", Addr(daoAddr.Hex()), Block(body...))
}

func repoVersion(t *testing.T, method string, code common.Address, contentURI string) []byte {
	t.Helper()
	parsed, err := bindings.RepoMetaData.ParseABI()
	require.NoError(t, err)
	out, err := parsed.Methods[method].Outputs.Pack([3]uint16{1, 0, 0}, code, []byte(contentURI))
	require.NoError(t, err)
	return out
}

// unpackCall checks data calls method of meta and returns its arguments.
func unpackCall(t *testing.T, meta *bind.MetaData, method string, data []byte) []any {
	t.Helper()
	parsed, err := meta.ParseABI()
	require.NoError(t, err)
	m, ok := parsed.Methods[method]
	require.True(t, ok, "method %s", method)
	require.GreaterOrEqual(t, len(data), 4)
	require.Equal(t, m.ID, data[:4], "selector of %s", method)
	args, err := m.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	return args
}

func txAt(t *testing.T, actions []domain.Action, idx int) domain.TransactionAction {
	t.Helper()
	require.Greater(t, len(actions), idx)
	tx, ok := actions[idx].(domain.TransactionAction)
	require.True(t, ok)
	return tx
}
