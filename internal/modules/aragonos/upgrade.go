package aragonos

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// upgrade points an installed app's base to a newer implementation. The
// optional second argument is a semantic version or a code address.
func (m *AragonOS) upgrade() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateUpgrade(c); err != nil {
				return nil, err
			}
			dao, err := m.daoByOption(ctx, c, ev)
			if err != nil {
				return nil, err
			}

			v, err := ev.InterpretNode(ctx, c.Args[0], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			identifier := interpreter.ToString(v)
			app, ok := dao.ResolveApp(identifier)
			if !ok {
				return nil, interpreter.CommandError(c, "%s is not a DAO's app", identifier)
			}
			ensName := app.Name + "." + app.RegistryName

			var code common.Address
			if len(c.Args) == 2 {
				target, err := ev.InterpretNode(ctx, c.Args[1], interpreter.TreatAsLiteral())
				if err != nil {
					return nil, err
				}
				if addr, ok := interpreter.ToAddress(target); ok {
					code = addr
				} else {
					version, err := parseSemanticVersion(interpreter.ToString(target))
					if err != nil {
						return nil, interpreter.CommandError(c, "invalid second argument. Expected an address or a semantic version, but got %s", interpreter.ToString(target))
					}
					repo, err := m.lookupRepo(ctx, app)
					if err != nil {
						return nil, err
					}
					code, _, err = m.repoVersion(ctx, repo.Address, &version)
					if err != nil {
						return nil, err
					}
				}
			} else {
				repo, err := m.lookupRepo(ctx, app)
				if err != nil {
					return nil, err
				}
				code = repo.LastVersion.CodeAddress
			}

			if code == app.CodeAddress {
				return nil, interpreter.CommandError(c, "trying to upgrade app %s to the version already in use", identifier)
			}

			namespace, err := m.appBasesNamespace(ctx, dao)
			if err != nil {
				return nil, err
			}
			app.CodeAddress = code
			return []domain.Action{domain.TransactionAction{
				To:   dao.Kernel().Address,
				Data: m.kernel.PackSetApp(namespace, domain.Namehash(ensName), code),
			}}, nil
		},
		PreValidate: validateUpgrade,
	}
}

func validateUpgrade(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.Between(1, 2)); err != nil {
		return err
	}
	return interpreter.CheckOpts(c, daoOptName)
}

func (m *AragonOS) lookupRepo(ctx context.Context, app *domain.App) (*domain.Repo, error) {
	if m.registry == nil {
		return nil, domain.NewException(nil, "no registry client configured for this network")
	}
	return m.registry.Repo(ctx, app.Name, app.RegistryName)
}

// appBasesNamespace reads APP_BASES_NAMESPACE from the kernel, falling back
// to the aragonOS constant keccak256("base").
func (m *AragonOS) appBasesNamespace(ctx context.Context, dao *DAO) ([32]byte, error) {
	fallback := [32]byte(common.HexToHash("0xf1f3eb40f5bc1ad1344716ced8b8a0431d840b5783aea1fd01786bc26f35ac0f"))
	if m.session.Chain == nil {
		return fallback, nil
	}
	kernel := dao.Kernel().Address
	out, err := m.session.Chain.CallContract(ctx, ethereum.CallMsg{To: &kernel, Data: m.kernel.PackAppBasesNamespace()}, nil)
	if err != nil || len(out) == 0 {
		return fallback, nil
	}
	ns, err := m.kernel.UnpackAppBasesNamespace(out)
	if err != nil {
		return fallback, nil
	}
	return ns, nil
}
