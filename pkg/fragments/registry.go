package fragments

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps fragment schemes (yt, github, pdf, ...) to loaders.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// NewRegistry creates an empty loader registry
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
	}
}

// Register adds a loader under the given scheme
func (r *Registry) Register(scheme string, loader Loader) error {
	scheme = strings.TrimSpace(scheme)
	if scheme == "" {
		return fmt.Errorf("scheme is required")
	}
	if strings.Contains(scheme, ":") {
		return fmt.Errorf("scheme %q must not contain ':'", scheme)
	}
	if loader == nil {
		return fmt.Errorf("loader for scheme %s is nil", scheme)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loaders[scheme]; exists {
		return fmt.Errorf("loader for scheme %s already exists", scheme)
	}

	r.loaders[scheme] = loader
	return nil
}

// Unregister removes the loader for scheme, if any
func (r *Registry) Unregister(scheme string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.loaders, scheme)
}

// Get returns the loader registered under scheme. A missing scheme yields a
// *LoaderNotRegisteredError.
func (r *Registry) Get(scheme string) (Loader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loader, ok := r.loaders[scheme]
	if !ok {
		return nil, &LoaderNotRegisteredError{Scheme: scheme}
	}
	return loader, nil
}

// Has reports whether a loader is registered under scheme
func (r *Registry) Has(scheme string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.loaders[scheme]
	return ok
}

// Schemes returns the registered schemes in sorted order
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemes := make([]string, 0, len(r.loaders))
	for scheme := range r.loaders {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}
