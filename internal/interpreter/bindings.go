package interpreter

import "sort"

// BindingsSpace partitions bindings into independent namespaces.
type BindingsSpace int

const (
	// UserSpace holds script variables (`set $x ...`)
	UserSpace BindingsSpace = iota
	// AddrSpace maps identifiers such as app aliases to addresses
	AddrSpace
	// ModuleSpace holds loaded modules keyed by alias or name
	ModuleSpace
	// DataProviderSpace holds typed context values such as the current DAO
	DataProviderSpace
)

func (s BindingsSpace) String() string {
	switch s {
	case UserSpace:
		return "USER"
	case AddrSpace:
		return "ADDR"
	case ModuleSpace:
		return "MODULE"
	case DataProviderSpace:
		return "DATA_PROVIDER"
	default:
		return "UNKNOWN"
	}
}

// ScopeID addresses a frame in the bindings arena.
type ScopeID int

// RootScope is the scope every session starts with.
const RootScope ScopeID = 0

type bindingKey struct {
	space BindingsSpace
	name  string
}

type frame struct {
	parent ScopeID
	values map[bindingKey]any
}

// Bindings is a scoped key/value store. Frames live in an arena addressed by
// index and are released strictly LIFO, so a parent always outlives its
// children.
type Bindings struct {
	frames []frame
}

// NewBindings returns a store holding only the root scope.
func NewBindings() *Bindings {
	return &Bindings{
		frames: []frame{{parent: -1, values: map[bindingKey]any{}}},
	}
}

// CurrentScope returns the innermost scope.
func (b *Bindings) CurrentScope() ScopeID {
	return ScopeID(len(b.frames) - 1)
}

// Depth returns the number of live scopes.
func (b *Bindings) Depth() int {
	return len(b.frames)
}

// EnterScope pushes a child of the current scope.
func (b *Bindings) EnterScope() ScopeID {
	b.frames = append(b.frames, frame{
		parent: b.CurrentScope(),
		values: map[bindingKey]any{},
	})
	return b.CurrentScope()
}

// ExitScope drops the current scope and everything bound in it. The root
// scope is never dropped.
func (b *Bindings) ExitScope() {
	if len(b.frames) <= 1 {
		return
	}
	b.frames = b.frames[:len(b.frames)-1]
}

// MergeScope drops the current scope after copying its bindings into the
// parent, overwriting same-named parent bindings.
func (b *Bindings) MergeScope() {
	if len(b.frames) <= 1 {
		return
	}
	child := b.frames[len(b.frames)-1]
	parent := b.frames[child.parent]
	for k, v := range child.values {
		parent.values[k] = v
	}
	b.frames = b.frames[:len(b.frames)-1]
}

// GetBinding walks from the current scope to the root and returns the first
// value bound to name in space.
func (b *Bindings) GetBinding(name string, space BindingsSpace) (any, bool) {
	return b.GetBindingFrom(b.CurrentScope(), name, space)
}

// GetBindingFrom is GetBinding starting at scope instead of the current one.
func (b *Bindings) GetBindingFrom(scope ScopeID, name string, space BindingsSpace) (any, bool) {
	key := bindingKey{space: space, name: name}
	for id := scope; id >= 0 && int(id) < len(b.frames); id = b.frames[id].parent {
		if v, ok := b.frames[id].values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// HasBinding reports whether name resolves in space.
func (b *Bindings) HasBinding(name string, space BindingsSpace) bool {
	_, ok := b.GetBinding(name, space)
	return ok
}

// SetBinding binds name in the current scope.
func (b *Bindings) SetBinding(name string, value any, space BindingsSpace) {
	b.SetBindingAt(b.CurrentScope(), name, value, space)
}

// SetBindingAt binds name in the given live scope.
func (b *Bindings) SetBindingAt(scope ScopeID, name string, value any, space BindingsSpace) {
	if scope < 0 || int(scope) >= len(b.frames) {
		scope = b.CurrentScope()
	}
	b.frames[scope].values[bindingKey{space: space, name: name}] = value
}

// Snapshot returns every binding of space visible from the current scope,
// inner bindings shadowing outer ones.
func (b *Bindings) Snapshot(space BindingsSpace) map[string]any {
	out := map[string]any{}
	for id := b.CurrentScope(); id >= 0; id = b.frames[id].parent {
		for k, v := range b.frames[id].values {
			if k.space != space {
				continue
			}
			if _, shadowed := out[k.name]; !shadowed {
				out[k.name] = v
			}
		}
	}
	return out
}

// Names returns the sorted names visible in space.
func (b *Bindings) Names(space BindingsSpace) []string {
	snap := b.Snapshot(space)
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
