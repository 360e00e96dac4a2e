package aragonos

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/ast"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

const permissionErrorText = "invalid permission provided"

func (m *AragonOS) grant() interpreter.Command {
	return interpreter.Command{
		Run: func(ctx context.Context, c *ast.CommandExpression, ev interpreter.Evaluator) ([]domain.Action, error) {
			if err := validateGrant(c); err != nil {
				return nil, err
			}
			dao, err := m.daoByOption(ctx, c, ev)
			if err != nil {
				return nil, err
			}

			values, err := ev.InterpretNodes(ctx, c.Args[:2])
			if err != nil {
				return nil, err
			}
			rawRole, err := ev.InterpretNode(ctx, c.Args[2], interpreter.TreatAsLiteral())
			if err != nil {
				return nil, err
			}
			appName := nodeText(c.Args[1])

			var problems []string
			grantee, ok := interpreter.ToAddress(values[0])
			if !ok {
				problems = append(problems, "Invalid grantee. Expected an address, but got "+interpreter.ToString(values[0]))
			}
			appAddr, ok := interpreter.ToAddress(values[1])
			if !ok {
				problems = append(problems, "Invalid app. Expected an address, but got "+interpreter.ToString(values[1]))
			}
			role := interpreter.ToString(rawRole)
			var roleHash common.Hash
			isHash := strings.HasPrefix(role, "0x")
			if isHash {
				b, err := hexutil.Decode(role)
				if err != nil || len(b) != common.HashLength {
					problems = append(problems, "Invalid role. Expected a valid hash, but got "+role)
				} else {
					roleHash = common.BytesToHash(b)
				}
			}
			if len(problems) > 0 {
				return nil, interpreter.CommandError(c, "%s", domain.ListItems(permissionErrorText, problems))
			}

			app, ok := dao.AppByAddress(appAddr)
			if !ok {
				return nil, interpreter.CommandError(c, "app %s is not part of the DAO", appName)
			}
			if !isHash {
				r, ok := artifactRole(app, role)
				if !ok {
					return nil, interpreter.CommandError(c, "given permission doesn't exists on app %s", appName)
				}
				roleHash = r
			}

			perm, exists := app.Permissions[roleHash]
			if !exists {
				perm = &domain.AppPermission{Grantees: map[common.Address]struct{}{}}
			}
			if _, granted := perm.Grantees[grantee]; granted {
				return nil, interpreter.CommandError(c, "grantee %s already has given permission on app %s", interpreter.ToString(values[0]), appName)
			}

			acl, ok := dao.ACL()
			if !ok {
				return nil, interpreter.CommandError(c, "DAO %s has no ACL", dao.Address().Hex())
			}

			if perm.Manager != (common.Address{}) {
				if len(c.Args) == 4 {
					m.session.Log.Warn("permission manager ignored, permission already exists", "app", appName, "role", role)
				}
				perm.Grantees[grantee] = struct{}{}
				app.Permissions[roleHash] = perm
				return []domain.Action{domain.TransactionAction{
					To:   acl.Address,
					Data: m.acl.PackGrantPermission(grantee, appAddr, roleHash),
				}}, nil
			}

			if len(c.Args) < 4 {
				return nil, interpreter.CommandError(c, "required permission manager missing")
			}
			rawManager, err := ev.InterpretNode(ctx, c.Args[3])
			if err != nil {
				return nil, err
			}
			manager, ok := interpreter.ToAddress(rawManager)
			if !ok {
				return nil, interpreter.CommandError(c, "invalid permission manager. Expected an address, but got %s", interpreter.ToString(rawManager))
			}
			perm.Manager = manager
			perm.Grantees[grantee] = struct{}{}
			app.Permissions[roleHash] = perm
			return []domain.Action{domain.TransactionAction{
				To:   acl.Address,
				Data: m.acl.PackCreatePermission(grantee, appAddr, roleHash, manager),
			}}, nil
		},
		Completions: func(argIndex int, b *interpreter.Bindings) []string {
			if argIndex > 3 || argIndex == 2 {
				return nil
			}
			return b.Names(interpreter.AddrSpace)
		},
		PreValidate: validateGrant,
	}
}

func validateGrant(c *ast.CommandExpression) error {
	if err := interpreter.CheckArgsLength(c, interpreter.Between(3, 4)); err != nil {
		return err
	}
	return interpreter.CheckOpts(c, daoOptName)
}

func artifactRole(app *domain.App, name string) (common.Hash, bool) {
	r, ok := domain.FindRole(app.Roles, name)
	return r.Bytes, ok
}

// nodeText returns the text a node was written with, for error messages.
func nodeText(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Identifier:
		return node.Value
	case *ast.StringLiteral:
		return node.Value
	case *ast.AddressLiteral:
		return node.Value
	}
	return string(n.Type())
}
