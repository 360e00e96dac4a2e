package interpreter

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

// ChainClient is the signing/identity handle of a session.
type ChainClient interface {
	NonceReader
	// Address is the account actions are produced for
	Address() common.Address
	ChainID(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// ArtifactFetcher retrieves an app artifact by content locator.
type ArtifactFetcher interface {
	Fetch(ctx context.Context, contentURI string) (*domain.Artifact, error)
}

// Session is the state shared by every module of one interpretation.
type Session struct {
	Bindings *Bindings
	Nonces   *NonceTracker
	Chain    ChainClient
	Fetcher  ArtifactFetcher
	Log      *slog.Logger
	// Out receives output of the print command
	Out io.Writer

	artifacts map[common.Address]*domain.Artifact
	factories map[string]ModuleFactory
	loaded    []Module
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithLogger(log *slog.Logger) SessionOption {
	return func(s *Session) { s.Log = log }
}

func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) { s.Out = w }
}

// WithModule registers a loadable module under name.
func WithModule(name string, factory ModuleFactory) SessionOption {
	return func(s *Session) { s.factories[name] = factory }
}

func NewSession(chain ChainClient, fetcher ArtifactFetcher, opts ...SessionOption) *Session {
	s := &Session{
		Bindings:  NewBindings(),
		Chain:     chain,
		Fetcher:   fetcher,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:       io.Discard,
		artifacts: map[common.Address]*domain.Artifact{},
		factories: map[string]ModuleFactory{},
	}
	var reader NonceReader
	if chain != nil {
		reader = chain
	}
	s.Nonces = NewNonceTracker(reader)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Artifact returns the artifact of the implementation at code, fetching it
// through contentURI on first use. The cache is session-wide because the same
// code address backs apps in different DAOs.
func (s *Session) Artifact(ctx context.Context, code common.Address, contentURI string) (*domain.Artifact, error) {
	if a, ok := s.artifacts[code]; ok {
		return a, nil
	}
	if s.Fetcher == nil {
		return nil, domain.NewException(nil, "no artifact fetcher configured to retrieve %s", contentURI)
	}
	s.Log.Debug("fetching app artifact", "code", code.Hex(), "content", contentURI)
	a, err := s.Fetcher.Fetch(ctx, contentURI)
	if err != nil {
		return nil, err
	}
	s.artifacts[code] = a
	return a, nil
}

// CachedArtifact returns the artifact cached for code, if any.
func (s *Session) CachedArtifact(code common.Address) (*domain.Artifact, bool) {
	a, ok := s.artifacts[code]
	return a, ok
}

// CacheArtifact stores a for code, e.g. for system apps with embedded ABIs.
func (s *Session) CacheArtifact(code common.Address, a *domain.Artifact) {
	s.artifacts[code] = a
}

// Load instantiates module name and binds it under alias (or name) in the
// current scope. Loading a module already visible under that binding returns
// the existing instance.
func (s *Session) Load(name, alias string) (Module, error) {
	key := name
	if alias != "" {
		key = alias
	}
	if v, ok := s.Bindings.GetBinding(key, ModuleSpace); ok {
		if m, ok := v.(Module); ok && m.Name() == name {
			return m, nil
		}
	}
	factory, ok := s.factories[name]
	if !ok {
		err := domain.NewNotFoundError("module %s not found", name)
		if sug := Suggest(name, keys(s.factories)); sug != "" {
			err.Message += ". Did you mean " + sug + "?"
		}
		return nil, err
	}
	m, err := factory(s, alias)
	if err != nil {
		return nil, err
	}
	s.Bindings.SetBinding(key, m, ModuleSpace)
	s.loaded = append(s.loaded, m)
	s.Log.Debug("module loaded", "module", name, "alias", alias)
	return m, nil
}

// Module returns the module bound under name in the visible scopes.
func (s *Session) Module(name string) (Module, bool) {
	v, ok := s.Bindings.GetBinding(name, ModuleSpace)
	if !ok {
		return nil, false
	}
	m, ok := v.(Module)
	return m, ok
}

// Modules returns the visible modules in load order.
func (s *Session) Modules() []Module {
	var out []Module
	for _, m := range s.loaded {
		if bound, ok := s.Module(m.ContextualName()); ok && bound == m {
			out = append(out, m)
		}
	}
	return out
}
