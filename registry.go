package toolcheck

import (
	"slices"
	"sync"
)

// StaticRegistry is the in-memory Registry implementation. It is a plain
// name-keyed store: no execution, no middleware, just the read surface the
// validators need. Safe for concurrent use.
type StaticRegistry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewStaticRegistry creates a registry preloaded with defs.
func NewStaticRegistry(defs ...*Definition) *StaticRegistry {
	r := &StaticRegistry{defs: make(map[string]*Definition, len(defs))}
	for _, def := range defs {
		r.Register(def)
	}
	return r
}

// Register adds a definition. A definition with the same name replaces the
// existing one. Nil definitions and empty names are ignored.
func (r *StaticRegistry) Register(def *Definition) {
	if def == nil || def.Name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Name] = def
}

// GetDefinition returns the definition registered under name, or (nil,
// false) if not found.
func (r *StaticRegistry) GetDefinition(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// GetDefinitions returns all registered definitions sorted by name for
// deterministic order.
func (r *StaticRegistry) GetDefinitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]*Definition, 0, len(names))
	for _, name := range names {
		out = append(out, r.defs[name])
	}
	return out
}

var _ Registry = (*StaticRegistry)(nil)
