// Package aragonos implements the commands that operate on Aragon DAOs:
// connecting to an organization, installing and upgrading apps, managing
// permissions and routing actions through forwarders.
package aragonos

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// ModuleName is the name the module is loaded with.
const ModuleName = "aragonos"

const (
	currentDAOBinding = "currentDAO"
	daoOptName        = "dao"
)

// RegistryClient queries Aragon registry metadata for one network.
type RegistryClient interface {
	Repo(ctx context.Context, name, registry string) (*domain.Repo, error)
	OrganizationApps(ctx context.Context, dao common.Address) ([]domain.OrganizationApp, error)
}

// NameResolver resolves ENS names against a registry. Unresolved names fail
// with domain.ErrNotFound.
type NameResolver interface {
	Resolve(ctx context.Context, name string, registry common.Address) (common.Address, error)
}

// Option configures the module factory.
type Option func(*AragonOS)

// WithENSRegistry overrides the Aragon ENS registry derived from the chain.
func WithENSRegistry(addr common.Address) Option {
	return func(m *AragonOS) { m.ensRegistry = &addr }
}

// AragonOS is the aragonos module instance of a session.
type AragonOS struct {
	interpreter.BaseModule

	session       *interpreter.Session
	registry      RegistryClient
	resolver      NameResolver
	ensRegistry   *common.Address
	connectedDAOs []*DAO

	kernel    *bindings.Kernel
	acl       *bindings.ACL
	repo      *bindings.Repo
	forwarder *bindings.Forwarder
}

// New returns the factory that builds the module for a session.
func New(registry RegistryClient, resolver NameResolver, opts ...Option) interpreter.ModuleFactory {
	return func(s *interpreter.Session, alias string) (interpreter.Module, error) {
		m := &AragonOS{
			BaseModule: interpreter.NewBaseModule(ModuleName, alias),
			session:    s,
			registry:   registry,
			resolver:   resolver,
			kernel:     bindings.NewKernel(),
			acl:        bindings.NewACL(),
			repo:       bindings.NewRepo(),
			forwarder:  bindings.NewForwarder(),
		}
		for _, opt := range opts {
			opt(m)
		}

		m.RegisterCommand("connect", m.connect())
		m.RegisterCommand("install", m.install())
		m.RegisterCommand("forward", m.forward())
		m.RegisterCommand("grant", m.grant())
		m.RegisterCommand("upgrade", m.upgrade())

		m.RegisterHelper("aragonEns", m.aragonEnsHelper())
		return m, nil
	}
}

// ConnectedDAOs returns the DAOs connected so far, in connection order.
func (m *AragonOS) ConnectedDAOs() []*DAO {
	return m.connectedDAOs
}

// CurrentDAO returns the DAO of the innermost enclosing connect block.
func (m *AragonOS) CurrentDAO() (*DAO, bool) {
	v, ok := m.session.Bindings.GetBinding(currentDAOBinding, interpreter.DataProviderSpace)
	if !ok {
		return nil, false
	}
	dao, ok := v.(*DAO)
	return dao, ok
}

// AddressLabels maps every app address of the connected DAOs to its
// identifier. The first DAO to claim an address wins.
func (m *AragonOS) AddressLabels() map[common.Address]string {
	labels := map[common.Address]string{}
	for _, dao := range m.connectedDAOs {
		for _, app := range dao.Apps() {
			if _, ok := labels[app.Address]; !ok {
				labels[app.Address] = app.Identifier
			}
		}
	}
	return labels
}

func (m *AragonOS) connectedDAO(addr common.Address) (*DAO, bool) {
	for _, dao := range m.connectedDAOs {
		if dao.Kernel().Address == addr {
			return dao, true
		}
	}
	return nil, false
}

// registerNextProxyAddress predicts the address of the next proxy the DAO's
// kernel deploys and binds it to identifier.
func (m *AragonOS) registerNextProxyAddress(ctx context.Context, identifier string, dao *DAO) (common.Address, error) {
	kernel := dao.Kernel().Address
	nonce, err := m.session.Nonces.Next(ctx, kernel)
	if err != nil {
		return common.Address{}, domain.NewException(err, "failed to build nonce for kernel %s", kernel.Hex())
	}
	addr := domain.PredictProxyAddress(kernel, nonce)
	m.session.Bindings.SetBinding(identifier, addr, interpreter.AddrSpace)
	m.session.Log.Debug("predicted proxy address", "identifier", identifier, "kernel", kernel.Hex(), "nonce", nonce, "address", addr.Hex())
	return addr, nil
}

// aragonENS returns the ENS registry APM names resolve against.
func (m *AragonOS) aragonENS(ctx context.Context) (common.Address, error) {
	if m.ensRegistry != nil {
		return *m.ensRegistry, nil
	}
	if m.session.Chain == nil {
		return common.Address{}, domain.NewException(nil, "no chain client to determine the Aragon ENS registry")
	}
	chainID, err := m.session.Chain.ChainID(ctx)
	if err != nil {
		return common.Address{}, domain.NewException(err, "failed to read chain id")
	}
	network, ok := domain.LookupNetwork(chainID.Uint64())
	if !ok {
		return common.Address{}, domain.NewException(nil, "network %s not supported", chainID)
	}
	return network.AragonENS, nil
}

// resolveRepo resolves the APM repo address of name.registry.
func (m *AragonOS) resolveRepo(ctx context.Context, ensName string) (common.Address, error) {
	if m.resolver == nil {
		return common.Address{}, fmt.Errorf("no ENS resolver configured")
	}
	registry, err := m.aragonENS(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return m.resolver.Resolve(ctx, ensName, registry)
}
