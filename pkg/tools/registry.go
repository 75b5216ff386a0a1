package tools

import (
	"fmt"
	"sync"

	"github.com/emissary-bot/emissary/pkg/models"
)

// Registry holds the raw tool catalog registered at startup. Domain tools
// are plugged in by the hosting binary; the core only consumes the
// interface. The registry also owns the shared read-only result cache, so
// catalogs built for successive turns see each other's entries.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
	cache *ResultCache
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool), cache: NewResultCache()}
}

// Catalog prepares the tool set for one turn: secrets-class tools are
// dropped always, non-read-only tools are dropped outside private chats,
// and every survivor is policy-wrapped around the registry's result cache.
func (r *Registry) Catalog(policy Policy) []Tool {
	raw := r.All()
	wrapped := make([]Tool, 0, len(raw))
	for _, t := range raw {
		if t.Class() == ClassSecrets {
			continue
		}
		if policy.ChatType != models.ChatTypePrivate && t.Class() != ClassReadOnly {
			continue
		}
		wrapped = append(wrapped, PolicyWrap(t, policy, r.cache))
	}
	return wrapped
}

// Register adds a tool. Duplicate names are rejected.
func (r *Registry) Register(t Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name()]; exists {
		return fmt.Errorf("tool %s already registered", t.Name())
	}
	r.tools[t.Name()] = t
	r.order = append(r.order, t.Name())
	return nil
}

// Get returns a registered tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// All returns the raw tools in registration order.
func (r *Registry) All() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}
