package component

import (
	"log/slog"
	"slices"
	"sync"
)

// Registry maps stable names to definitions. It is process-wide state
// shared by every factory that builds into the same tree, so it is safe for
// concurrent use. Registration is idempotent.
type Registry struct {
	defs map[string]*Definition
	mu   sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Define registers def under its stable name. It reports false, leaving the
// registry unchanged, when the name is already registered.
func (r *Registry) Define(def *Definition) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[def.name]; ok {
		return false
	}
	r.defs[def.name] = def
	slog.Debug("component registered", "name", def.name)
	return true
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// New instantiates the definition registered under name.
func (r *Registry) New(name string) (*Host, bool) {
	def, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	return New(def), true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
