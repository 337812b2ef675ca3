// Package registry manages named transform factories, letting chains be
// assembled from declarative manifests instead of Go code.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/ouro/pkg/domain"
)

// Factory builds a transform from manifest parameters. Params may be nil
// when the manifest declares none.
type Factory func(params map[string]any) (domain.TransformFunc, error)

// Registry manages the available transforms.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a transform factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// Build looks up a factory by name and instantiates the transform.
// Returns an error if the transform is not registered or its params are
// rejected by the factory.
func (r *Registry) Build(name string, params map[string]any) (domain.TransformFunc, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("transform not registered: %s", name)
	}

	tf, err := fn(params)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", name, err)
	}
	return tf, nil
}

// Names returns the registered transform names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
