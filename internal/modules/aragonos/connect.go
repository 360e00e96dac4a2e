package aragonos

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

func (m *AragonOS) connect() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateConnect(c); err != nil {
				return nil, err
			}
			blockNode := c.Args[len(c.Args)-1]
			forwarderNodes := c.Args[1 : len(c.Args)-1]

			v, err := ev.InterpretNode(ctx, c.Args[0])
			if err != nil {
				return nil, err
			}
			addr, ok := interpreter.ToAddress(v)
			if !ok {
				return nil, interpreter.CommandError(c, "invalid DAO address. Expected an address, but got %s", interpreter.FormatValue(v))
			}
			if current, ok := m.CurrentDAO(); ok && current.Address() == addr {
				return nil, interpreter.CommandError(c, "trying to connect to an already connected DAO (%s)", addr.Hex())
			}

			dao, err := m.buildDAO(ctx, addr)
			if err != nil {
				return nil, err
			}
			m.connectedDAOs = append(m.connectedDAOs, dao)

			out, err := ev.InterpretNode(ctx, blockNode,
				interpreter.WithBlockModule(m.ContextualName()),
				interpreter.WithBlockInitializer(func(context.Context) error {
					m.bindDAO(dao)
					return nil
				}),
			)
			if err != nil {
				return nil, err
			}
			actions, _ := out.([]domain.Action)

			if hasProviderAction(actions) {
				return nil, interpreter.CommandError(c, "can't switch networks inside a connect command")
			}
			if len(forwarderNodes) == 0 {
				return actions, nil
			}
			forwarders, err := m.resolveForwarders(ctx, c, forwarderNodes, ev, dao)
			if err != nil {
				return nil, err
			}
			forwardContext, err := contextOpt(ctx, c, ev)
			if err != nil {
				return nil, err
			}
			txs, _ := domain.TransactionActions(actions)
			return m.batchForwarderActions(ctx, c, txs, forwarders, forwardContext)
		},
		PreValidate: validateConnect,
	}
}

func validateConnect(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.AtLeast(2)); err != nil {
		return err
	}
	if err := interpreter.CheckOpts(c, "context"); err != nil {
		return err
	}
	if _, ok := c.Args[len(c.Args)-1].(*ast.BlockExpression); !ok {
		return interpreter.CommandError(c, "last argument should be a set of commands")
	}
	return nil
}

// bindDAO exposes dao to the block being evaluated: as the current DAO and
// through one address binding per app identifier.
func (m *AragonOS) bindDAO(dao *DAO) {
	b := m.session.Bindings
	b.SetBinding(currentDAOBinding, dao, interpreter.DataProviderSpace)
	for _, app := range dao.Apps() {
		b.SetBinding(app.Identifier, app.Address, interpreter.AddrSpace)
		if parsed, err := ParseAppIdentifier(app.Identifier); err == nil && parsed.Label == "0" {
			b.SetBinding(parsed.base(), app.Address, interpreter.AddrSpace)
		}
	}
}

// buildDAO fetches the organization's apps and their artifacts.
func (m *AragonOS) buildDAO(ctx context.Context, addr common.Address) (*DAO, error) {
	if m.registry == nil {
		return nil, domain.NewException(nil, "no registry client configured for this network")
	}
	orgApps, err := m.registry.OrganizationApps(ctx, addr)
	if err != nil {
		return nil, err
	}

	dao := newDAO(addr)
	counters := map[string]int{}
	for _, orgApp := range orgApps {
		registry := orgApp.RegistryName
		if registry == "" {
			registry = domain.DefaultRegistry
		}
		key := orgApp.Name + "@" + registry
		identifier := identifierFor(orgApp.Name, registry, counters[key])
		counters[key]++

		artifact, err := m.appArtifact(ctx, orgApp.Name, registry, orgApp.CodeAddress, orgApp.ContentURI)
		if err != nil {
			return nil, err
		}

		app := &domain.App{
			Identifier:   identifier,
			Name:         orgApp.Name,
			RegistryName: registry,
			Address:      orgApp.Address,
			CodeAddress:  orgApp.CodeAddress,
			ContentURI:   orgApp.ContentURI,
			ABI:          &artifact.ABI,
			Roles:        artifact.Roles,
			Permissions:  domain.NewAppPermissions(artifact.Roles),
		}
		for _, grant := range orgApp.Roles {
			perm, ok := app.Permissions[grant.RoleHash]
			if !ok {
				perm = &domain.AppPermission{Grantees: map[common.Address]struct{}{}}
				app.Permissions[grant.RoleHash] = perm
			}
			perm.Manager = grant.Manager
			for _, g := range grant.Grantees {
				perm.Grantees[g] = struct{}{}
			}
		}
		if err := dao.AddApp(app); err != nil {
			return nil, domain.NewException(err, "invalid organization app list")
		}
	}

	if err := m.ensureSystemApps(ctx, dao); err != nil {
		return nil, err
	}
	m.session.Log.Info("connected to DAO", "dao", addr.Hex(), "apps", len(dao.Apps()))
	return dao, nil
}

func (m *AragonOS) appArtifact(ctx context.Context, name, registry string, code common.Address, contentURI string) (*domain.Artifact, error) {
	if registry == domain.DefaultRegistry {
		if a, ok := systemArtifact(name); ok {
			return a, nil
		}
	}
	return m.session.Artifact(ctx, code, contentURI)
}

// ensureSystemApps adds the kernel and ACL when the registry did not report
// them. The ACL address is read from the kernel.
func (m *AragonOS) ensureSystemApps(ctx context.Context, dao *DAO) error {
	if !dao.HasApp(kernelAppName) {
		a, _ := systemArtifact(kernelAppName)
		if err := dao.AddApp(systemApp(kernelAppName, dao.Address(), a)); err != nil {
			return err
		}
	}
	if dao.HasApp(aclAppName) {
		return nil
	}
	if m.session.Chain == nil {
		return domain.NewException(nil, "no chain client to read the ACL of %s", dao.Address().Hex())
	}
	kernel := dao.Address()
	out, err := m.session.Chain.CallContract(ctx, ethereum.CallMsg{To: &kernel, Data: m.kernel.PackAcl()}, nil)
	if err != nil {
		return domain.NewException(err, "failed to read ACL of %s", kernel.Hex())
	}
	aclAddr, err := m.kernel.UnpackAcl(out)
	if err != nil {
		return domain.NewException(err, "failed to decode ACL of %s", kernel.Hex())
	}
	a, _ := systemArtifact(aclAppName)
	return dao.AddApp(systemApp(aclAppName, aclAddr, a))
}

func systemApp(name string, addr common.Address, a *domain.Artifact) *domain.App {
	return &domain.App{
		Identifier:   name + ":0",
		Name:         name,
		RegistryName: domain.DefaultRegistry,
		Address:      addr,
		ABI:          &a.ABI,
		Roles:        a.Roles,
		Permissions:  domain.NewAppPermissions(a.Roles),
	}
}

func hasProviderAction(actions []domain.Action) bool {
	for _, a := range actions {
		if domain.IsProviderAction(a) {
			return true
		}
	}
	return false
}
