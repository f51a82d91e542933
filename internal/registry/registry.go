// Package registry provides namespaced lookup of live covergroups.
package registry

import (
	"sort"

	"go.uber.org/zap"

	"funcov/internal/model"
)

// Registry maps namespaced keys ("{module}.{name}", or the bare name) to
// live covergroups. One covergroup occupies a key at a time; re-registering
// a key replaces the previous occupant. A Registry belongs to a coverage
// session rather than the process, so independent sessions can coexist.
type Registry struct {
	groups map[string]*model.Covergroup
	logger *zap.Logger
}

// New creates an empty registry. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		groups: make(map[string]*model.Covergroup),
		logger: logger,
	}
}

// Register inserts the covergroup under its namespaced key. A non-empty
// module overrides the covergroup's module before the key is computed.
// Collisions overwrite with a warning.
func (r *Registry) Register(cg *model.Covergroup, module string) {
	if module != "" {
		cg.Module = module
	}
	key := cg.Key()
	if _, exists := r.groups[key]; exists {
		r.logger.Warn("covergroup already registered, overwriting", zap.String("key", key))
	}
	r.groups[key] = cg
}

// Get returns the covergroup registered under (module, name).
func (r *Registry) Get(name, module string) (*model.Covergroup, bool) {
	key := name
	if module != "" {
		key = module + "." + name
	}
	cg, ok := r.groups[key]
	return cg, ok
}

// All returns a copy of the key -> covergroup mapping.
func (r *Registry) All() map[string]*model.Covergroup {
	out := make(map[string]*model.Covergroup, len(r.groups))
	for k, v := range r.groups {
		out[k] = v
	}
	return out
}

// Keys returns all registered keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.groups))
	for k := range r.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered covergroups.
func (r *Registry) Len() int { return len(r.groups) }

// Reset removes all registered covergroups.
func (r *Registry) Reset() {
	r.groups = make(map[string]*model.Covergroup)
}
