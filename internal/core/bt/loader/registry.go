package loader

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/behaviourtree/internal/core/bt"
)

// ActionFactory creates the behaviour for one leaf. It is called once per
// leaf so each leaf can keep private progress state.
type ActionFactory func(params map[string]any) (bt.TickFunc, error)

// Registry maps action names used in definitions to factories.
type Registry interface {
	Register(name string, factory ActionFactory)
	New(name string, params map[string]any) (bt.TickFunc, error)
	Names() []string
}

type registry struct {
	mu      sync.RWMutex
	actions map[string]ActionFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &registry{actions: make(map[string]ActionFactory)}
}

func (r *registry) Register(name string, factory ActionFactory) {
	r.mu.Lock()
	r.actions[name] = factory
	r.mu.Unlock()
}

func (r *registry) New(name string, params map[string]any) (bt.TickFunc, error) {
	r.mu.RLock()
	f := r.actions[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	return f(params)
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Static wraps a fixed status as an ActionFactory.
func Static(st bt.Status) ActionFactory {
	return func(map[string]any) (bt.TickFunc, error) {
		return func() bt.Status { return st }, nil
	}
}
