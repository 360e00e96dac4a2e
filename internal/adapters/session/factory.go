package session

import (
	"io"
	"log/slog"

	"github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
	"github.com/lobintsev/evmcrispr/internal/modules/aragonos"
	"github.com/lobintsev/evmcrispr/internal/modules/std"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// Factory builds interpreter sessions with the std and aragonos modules
// registered against the configured network.
type Factory struct {
	chain    interpreter.ChainClient
	fetcher  interpreter.ArtifactFetcher
	registry aragonos.RegistryClient
	resolver aragonos.NameResolver
	ensOpts  []aragonos.Option
	log      *slog.Logger
}

// NewFactory creates a session factory
func NewFactory(
	cfg *config.RuntimeConfig,
	chain interpreter.ChainClient,
	fetcher interpreter.ArtifactFetcher,
	registry aragonos.RegistryClient,
	resolver aragonos.NameResolver,
	log *slog.Logger,
) *Factory {
	f := &Factory{
		chain:    chain,
		fetcher:  fetcher,
		registry: registry,
		resolver: resolver,
		log:      log,
	}
	if cfg.ENSRegistry != nil {
		f.ensOpts = append(f.ensOpts, aragonos.WithENSRegistry(*cfg.ENSRegistry))
	}
	return f
}

// NewSession returns a fresh session. Sessions share nothing, so bindings
// and nonce counters start over for every script.
func (f *Factory) NewSession(out io.Writer) *interpreter.Session {
	return interpreter.NewSession(f.chain, f.fetcher,
		interpreter.WithLogger(f.log.With("component", "interpreter")),
		interpreter.WithOutput(out),
		interpreter.WithModule(std.ModuleName, std.New(f.resolver)),
		interpreter.WithModule(aragonos.ModuleName, aragonos.New(f.registry, f.resolver, f.ensOpts...)),
	)
}

var _ usecase.SessionFactory = (*Factory)(nil)
