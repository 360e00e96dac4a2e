package adapters

import (
	"github.com/ethereum/go-ethereum"
	"github.com/google/wire"

	"github.com/lobintsev/evmcrispr/internal/adapters/blockchain"
	"github.com/lobintsev/evmcrispr/internal/adapters/ens"
	"github.com/lobintsev/evmcrispr/internal/adapters/ipfs"
	"github.com/lobintsev/evmcrispr/internal/adapters/progress"
	"github.com/lobintsev/evmcrispr/internal/adapters/scriptfile"
	"github.com/lobintsev/evmcrispr/internal/adapters/session"
	"github.com/lobintsev/evmcrispr/internal/adapters/subgraph"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
	"github.com/lobintsev/evmcrispr/internal/modules/aragonos"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// BlockchainSet provides the chain client and everything reading through it
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,
	wire.Bind(new(interpreter.ChainClient), new(*blockchain.Client)),
	wire.Bind(new(ethereum.ContractCaller), new(*blockchain.Client)),
	wire.Bind(new(usecase.NonceReader), new(*blockchain.Client)),

	ens.NewResolver,
	wire.Bind(new(aragonos.NameResolver), new(*ens.Resolver)),
)

// RegistrySet provides the registry query and artifact clients
var RegistrySet = wire.NewSet(
	subgraph.NewClientFromConfig,
	wire.Bind(new(aragonos.RegistryClient), new(*subgraph.Client)),

	ipfs.NewFetcherFromConfig,
	wire.Bind(new(interpreter.ArtifactFetcher), new(*ipfs.Fetcher)),
)

// ScriptSet provides script loading and interpreter sessions
var ScriptSet = wire.NewSet(
	scriptfile.NewLoader,
	wire.Bind(new(usecase.ScriptLoader), new(*scriptfile.Loader)),

	session.NewFactory,
	wire.Bind(new(usecase.SessionFactory), new(*session.Factory)),
)

// ProgressSet provides progress reporting
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	RegistrySet,
	ScriptSet,
	ProgressSet,
)
