package provider

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

// Registry resolves adapters by the name configured at runtime.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	enabled   map[string]bool
}

// NewRegistry registers providers and enables those named in enabled.
// An empty enabled list enables every registered provider.
func NewRegistry(enabled []string, providers ...Provider) *Registry {
	r := &Registry{
		providers: map[string]Provider{},
		enabled:   map[string]bool{},
	}

	for _, p := range providers {
		r.Register(p)
	}

	if len(enabled) == 0 {
		for name := range r.providers {
			r.enabled[name] = true
		}

		return r
	}

	for _, name := range enabled {
		r.enabled[name] = true
	}

	return r
}

func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[p.Name()] = p
}

// Get returns the named provider if it is registered and enabled.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProvider, "%q", name)
	}

	if !r.enabled[name] {
		return nil, errors.Wrapf(ErrDisabled, "%q", name)
	}

	return p, nil
}

// Enabled lists the names of enabled, registered providers in sorted order.
func (r *Registry) Enabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		if r.enabled[name] {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// Wrap replaces every registered provider with decorate(provider).
func (r *Registry) Wrap(decorate func(Provider) Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, p := range r.providers {
		r.providers[name] = decorate(p)
	}
}
