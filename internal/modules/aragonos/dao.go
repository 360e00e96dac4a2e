package aragonos

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

// DAO is the context of a connected organization: its apps keyed by
// normalized identifier, in the order they were added.
type DAO struct {
	address common.Address
	apps    map[string]*domain.App
	order   []string
}

func newDAO(kernel common.Address) *DAO {
	return &DAO{
		address: kernel,
		apps:    map[string]*domain.App{},
	}
}

// Address is the kernel address, which is the DAO's address.
func (d *DAO) Address() common.Address {
	return d.address
}

// Kernel returns the kernel app. Every connected DAO has one.
func (d *DAO) Kernel() *domain.App {
	if app, ok := d.apps[kernelAppName+":0"]; ok {
		return app
	}
	return &domain.App{Identifier: kernelAppName + ":0", Name: kernelAppName, Address: d.address}
}

// ACL returns the DAO's access control list app.
func (d *DAO) ACL() (*domain.App, bool) {
	app, ok := d.apps[aclAppName+":0"]
	return app, ok
}

// ResolveApp finds an app by identifier; `voting` and `voting:0` name the
// same app.
func (d *DAO) ResolveApp(identifier string) (*domain.App, bool) {
	app, ok := d.apps[NormalizeIdentifier(identifier)]
	return app, ok
}

// AppByAddress finds the app deployed at addr.
func (d *DAO) AppByAddress(addr common.Address) (*domain.App, bool) {
	for _, id := range d.order {
		if d.apps[id].Address == addr {
			return d.apps[id], true
		}
	}
	return nil, false
}

// HasApp reports whether identifier is taken.
func (d *DAO) HasApp(identifier string) bool {
	_, ok := d.ResolveApp(identifier)
	return ok
}

// AddApp records app under its identifier. Identifiers are never reused.
func (d *DAO) AddApp(app *domain.App) error {
	id := NormalizeIdentifier(app.Identifier)
	if _, ok := d.apps[id]; ok {
		return fmt.Errorf("identifier %s is already in use", app.Identifier)
	}
	app.Identifier = id
	d.apps[id] = app
	d.order = append(d.order, id)
	return nil
}

// Apps returns every app in insertion order.
func (d *DAO) Apps() []*domain.App {
	out := make([]*domain.App, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.apps[id])
	}
	return out
}

// Identifiers returns the normalized identifiers in insertion order.
func (d *DAO) Identifiers() []string {
	return append([]string(nil), d.order...)
}
