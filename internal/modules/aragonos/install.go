package aragonos

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

func (m *AragonOS) install() interpreter.Command {
	return interpreter.Command{
		Run:         m.runInstall,
		PreValidate: validateInstall,
	}
}

func validateInstall(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.AtLeast(1)); err != nil {
		return err
	}
	if err := interpreter.CheckOpts(c, daoOptName, "version"); err != nil {
		return err
	}
	if o, ok := c.Opt("version"); ok {
		if lit, ok := o.Value.(*ast.StringLiteral); ok && !semanticVersionRegex.MatchString(lit.Value) {
			return interpreter.CommandError(c, "invalid --version option. Expected a semantic version, but got %s", lit.Value)
		}
	}
	return nil
}

func (m *AragonOS) runInstall(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
	if err := interpreter.CheckArgsLength(c, interpreter.AtLeast(1)); err != nil {
		return nil, err
	}
	if err := interpreter.CheckOpts(c, daoOptName, "version"); err != nil {
		return nil, err
	}

	dao, err := m.daoByOption(ctx, c, ev)
	if err != nil {
		return nil, err
	}

	identifierNode, paramNodes := c.Args[0], c.Args[1:]
	v, err := ev.InterpretNode(ctx, identifierNode, interpreter.TreatAsLiteral())
	if err != nil {
		return nil, err
	}
	identifier := interpreter.ToString(v)
	appID, err := ParseAppIdentifier(identifier)
	if err != nil {
		return nil, interpreter.CommandError(c, "%v", err)
	}
	if dao.HasApp(identifier) {
		return nil, interpreter.CommandError(c, "identifier %s is already in use.", identifier)
	}

	var version *[3]uint16
	rawVersion, found, err := interpreter.OptValue(ctx, c, "version", ev, interpreter.TreatAsLiteral())
	if err != nil {
		return nil, err
	}
	if found {
		sv, err := parseSemanticVersion(interpreter.ToString(rawVersion))
		if err != nil {
			return nil, interpreter.CommandError(c, "invalid --version option. Expected a semantic version, but got %s", interpreter.ToString(rawVersion))
		}
		version = &sv
	}

	ensName := appID.ENSName()
	repoAddr, err := m.resolveRepo(ctx, ensName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, interpreter.CommandError(c, "ENS repo name %s couldn't be resolved", ensName)
		}
		return nil, err
	}

	codeAddress, contentURI, err := m.repoVersion(ctx, repoAddr, version)
	if err != nil {
		return nil, err
	}

	artifact, err := m.session.Artifact(ctx, codeAddress, contentURI)
	if err != nil {
		return nil, err
	}

	initParams, err := ev.InterpretNodes(ctx, paramNodes)
	if err != nil {
		return nil, err
	}
	initialize, ok := artifact.ABI.Methods["initialize"]
	if !ok {
		return nil, interpreter.CommandError(c, "no initialize function found in %s ABI", ensName)
	}
	initPayload, err := interpreter.EncodeCalldata(initialize, initParams)
	if err != nil {
		return nil, interpreter.CommandError(c, "%v", err)
	}

	if !m.session.Bindings.HasBinding(identifier, interpreter.AddrSpace) {
		if _, err := m.registerNextProxyAddress(ctx, identifier, dao); err != nil {
			return nil, err
		}
	}
	proxy, _ := m.session.Bindings.GetBinding(identifier, interpreter.AddrSpace)
	proxyAddr, _ := interpreter.ToAddress(proxy)

	app := &domain.App{
		Identifier:   identifier,
		Name:         appID.Name,
		RegistryName: appID.RegistryName(),
		Address:      proxyAddr,
		CodeAddress:  codeAddress,
		ContentURI:   contentURI,
		ABI:          &artifact.ABI,
		Roles:        artifact.Roles,
		Permissions:  domain.NewAppPermissions(artifact.Roles),
	}
	if err := dao.AddApp(app); err != nil {
		return nil, interpreter.CommandError(c, "identifier %s is already in use.", identifier)
	}

	data, err := m.kernel.TryPackNewAppInstance(domain.Namehash(ensName), codeAddress, initPayload, false)
	if err != nil {
		return nil, interpreter.CommandError(c, "%v", err)
	}
	return []domain.Action{domain.TransactionAction{To: dao.Kernel().Address, Data: data}}, nil
}

// repoVersion reads the code address and content URI of the requested
// version, or of the latest one when version is nil.
func (m *AragonOS) repoVersion(ctx context.Context, repo common.Address, version *[3]uint16) (common.Address, string, error) {
	if m.session.Chain == nil {
		return common.Address{}, "", domain.NewException(nil, "no chain client to query repo %s", repo.Hex())
	}
	call := m.repo.PackGetLatest()
	if version != nil {
		call = m.repo.PackGetBySemanticVersion(*version)
	}
	out, err := m.session.Chain.CallContract(ctx, ethereum.CallMsg{To: &repo, Data: call}, nil)
	if err != nil {
		return common.Address{}, "", domain.NewException(err, "failed to query repo %s", repo.Hex())
	}
	if version != nil {
		res, err := m.repo.UnpackGetBySemanticVersion(out)
		if err != nil {
			return common.Address{}, "", domain.NewException(err, "failed to decode repo %s version", repo.Hex())
		}
		return res.ContractAddress, string(res.ContentURI), nil
	}
	res, err := m.repo.UnpackGetLatest(out)
	if err != nil {
		return common.Address{}, "", domain.NewException(err, "failed to decode repo %s version", repo.Hex())
	}
	return res.ContractAddress, string(res.ContentURI), nil
}

// daoByOption returns the DAO named by --dao, or the current one.
func (m *AragonOS) daoByOption(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) (*DAO, error) {
	v, found, err := interpreter.OptValue(ctx, c, daoOptName, ev)
	if err != nil {
		return nil, err
	}
	if found {
		addr, ok := interpreter.ToAddress(v)
		if !ok {
			return nil, interpreter.CommandError(c, "invalid --dao option. Expected an address, but got %s", interpreter.FormatValue(v))
		}
		dao, ok := m.connectedDAO(addr)
		if !ok {
			return nil, interpreter.CommandError(c, "--dao option must be a connected DAO, but got %s", addr.Hex())
		}
		return dao, nil
	}
	dao, ok := m.CurrentDAO()
	if !ok {
		return nil, interpreter.CommandError(c, "must be used within a \"connect\" command")
	}
	return dao, nil
}
