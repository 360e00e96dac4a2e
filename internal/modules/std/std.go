// Package std implements the module every script has loaded implicitly.
package std

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// ModuleName is the name std is bound under.
const ModuleName = interpreter.StdModuleName

// ENSRegistry is the public ENS registry, the same on every network it is
// deployed to.
var ENSRegistry = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

// NameResolver resolves ENS names against a registry.
type NameResolver interface {
	Resolve(ctx context.Context, name string, registry common.Address) (common.Address, error)
}

// Std holds the built-in commands and helpers.
type Std struct {
	interpreter.BaseModule

	session  *interpreter.Session
	resolver NameResolver
}

// New returns the factory that builds std for a session.
func New(resolver NameResolver) interpreter.ModuleFactory {
	return func(s *interpreter.Session, alias string) (interpreter.Module, error) {
		m := &Std{
			BaseModule: interpreter.NewBaseModule(ModuleName, alias),
			session:    s,
			resolver:   resolver,
		}
		m.RegisterCommand("load", m.load())
		m.RegisterCommand("set", m.set())
		m.RegisterCommand("exec", m.exec())
		m.RegisterCommand("switch", m.switchNetwork())
		m.RegisterCommand("print", m.print())

		m.RegisterHelper("me", m.me())
		m.RegisterHelper("id", m.id())
		m.RegisterHelper("ens", m.ens())
		m.RegisterHelper("date", m.date())
		return m, nil
	}
}
