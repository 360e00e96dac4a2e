package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingsScopes(t *testing.T) {
	b := NewBindings()
	b.SetBinding("$x", "root", UserSpace)
	b.SetBinding("voting", "0x1", AddrSpace)

	child := b.EnterScope()
	assert.Equal(t, ScopeID(1), child)
	assert.Equal(t, 2, b.Depth())

	v, ok := b.GetBinding("$x", UserSpace)
	require.True(t, ok)
	assert.Equal(t, "root", v)

	b.SetBinding("$x", "child", UserSpace)
	b.SetBinding("$y", "only-child", UserSpace)
	v, _ = b.GetBinding("$x", UserSpace)
	assert.Equal(t, "child", v)

	b.ExitScope()
	assert.Equal(t, 1, b.Depth())
	v, _ = b.GetBinding("$x", UserSpace)
	assert.Equal(t, "root", v)
	assert.False(t, b.HasBinding("$y", UserSpace))
}

func TestBindingsSpacesAreIndependent(t *testing.T) {
	b := NewBindings()
	b.SetBinding("vault", "addr", AddrSpace)

	assert.True(t, b.HasBinding("vault", AddrSpace))
	assert.False(t, b.HasBinding("vault", UserSpace))
	assert.False(t, b.HasBinding("vault", ModuleSpace))
}

func TestBindingsRootIsNeverDropped(t *testing.T) {
	b := NewBindings()
	b.SetBinding("$x", 1, UserSpace)
	b.ExitScope()
	b.MergeScope()

	assert.Equal(t, 1, b.Depth())
	assert.True(t, b.HasBinding("$x", UserSpace))
}

func TestBindingsMergeScope(t *testing.T) {
	b := NewBindings()
	b.SetBinding("$x", "old", UserSpace)
	b.EnterScope()
	b.SetBinding("$x", "new", UserSpace)
	b.SetBinding("$z", "kept", UserSpace)
	b.MergeScope()

	assert.Equal(t, 1, b.Depth())
	v, _ := b.GetBinding("$x", UserSpace)
	assert.Equal(t, "new", v)
	assert.True(t, b.HasBinding("$z", UserSpace))
}

func TestBindingsSetBindingAt(t *testing.T) {
	b := NewBindings()
	b.EnterScope()
	b.SetBindingAt(RootScope, "agent", "0x2", AddrSpace)
	b.ExitScope()

	assert.True(t, b.HasBinding("agent", AddrSpace))
}

func TestBindingsSnapshotAndNames(t *testing.T) {
	b := NewBindings()
	b.SetBinding("vault", "outer", AddrSpace)
	b.SetBinding("agent", "outer", AddrSpace)
	b.EnterScope()
	b.SetBinding("vault", "inner", AddrSpace)
	b.SetBinding("$x", 1, UserSpace)

	snap := b.Snapshot(AddrSpace)
	assert.Equal(t, map[string]any{"vault": "inner", "agent": "outer"}, snap)
	assert.Equal(t, []string{"agent", "vault"}, b.Names(AddrSpace))
	assert.Equal(t, []string{"$x"}, b.Names(UserSpace))
}

func TestBindingsSpaceString(t *testing.T) {
	tests := map[BindingsSpace]string{
		UserSpace:         "USER",
		AddrSpace:         "ADDR",
		ModuleSpace:       "MODULE",
		DataProviderSpace: "DATA_PROVIDER",
		BindingsSpace(42): "UNKNOWN",
	}
	for space, want := range tests {
		assert.Equal(t, want, space.String())
	}
}
