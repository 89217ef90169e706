package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/NVIDIA/path-follower/pkg/errors"
)

// Factory is a function that creates a new instance of a role.
// Each call must return a fresh instance.
type Factory[T any] func() T

// Info describes a registered entry.
type Info struct {
	Name string `json:"name" yaml:"name"`
	Doc  string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// RegOption modifies per-entry registration parameters.
type RegOption func(*entryOpts)

type entryOpts struct {
	doc string
}

// WithDoc attaches a human-readable note to the entry.
func WithDoc(doc string) RegOption { return func(o *entryOpts) { o.doc = doc } }

type entry[T any] struct {
	name    string
	factory Factory[T]
	doc     string
}

// Registry maps names to factories for one role. Entries keep registration
// order. It is safe for concurrent use; once sealed it is read-only.
type Registry[T any] struct {
	role    string
	mu      sync.RWMutex
	index   map[string]int
	entries []entry[T]
	sealed  atomic.Bool
}

// New creates an empty registry for the named role. The role appears in
// lookup errors.
func New[T any](role string) *Registry[T] {
	return &Registry[T]{
		role:  role,
		index: make(map[string]int),
	}
}

// Role returns the role served by this registry.
func (r *Registry[T]) Role() string {
	return r.role
}

// Register adds a factory under name.
// Returns an error if name is empty, factory is nil, the name is already
// registered, or the registry is sealed.
func (r *Registry[T]) Register(name string, factory Factory[T], opts ...RegOption) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", r.role)
	}
	if factory == nil {
		return fmt.Errorf("%s %q factory must not be nil", r.role, name)
	}
	if r.sealed.Load() {
		return fmt.Errorf("%s registry is sealed, cannot register %q", r.role, name)
	}

	var o entryOpts
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[name]; exists {
		return fmt.Errorf("%s %q already registered", r.role, name)
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry[T]{name: name, factory: factory, doc: o.doc})
	return nil
}

// MustRegister is a convenience function that panics on registration error.
// Use this when building a registry that must succeed.
func (r *Registry[T]) MustRegister(name string, factory Factory[T], opts ...RegOption) {
	if err := r.Register(name, factory, opts...); err != nil {
		panic(err)
	}
}

// Seal makes the registry read-only. Further Register calls fail.
func (r *Registry[T]) Seal() {
	r.sealed.Store(true)
}

// Sealed reports whether the registry is read-only.
func (r *Registry[T]) Sealed() bool {
	return r.sealed.Load()
}

// Make constructs a new instance registered under name.
// It fails with ErrCodeUnknownComponent for unregistered names and with
// ErrCodeAssemblyInvariant when the factory returns a nil instance.
func (r *Registry[T]) Make(name string) (T, error) {
	var zero T

	r.mu.RLock()
	i, ok := r.index[name]
	var factory Factory[T]
	if ok {
		factory = r.entries[i].factory
	}
	r.mu.RUnlock()

	if !ok {
		return zero, errors.NewWithContext(errors.ErrCodeUnknownComponent,
			fmt.Sprintf("unknown %s %q", r.role, name),
			map[string]any{"role": r.role, "name": name})
	}

	instance := factory()
	if IsNil(instance) {
		return zero, errors.NewWithContext(errors.ErrCodeAssemblyInvariant,
			fmt.Sprintf("%s factory %q returned no instance", r.role, name),
			map[string]any{"role": r.role, "name": name})
	}
	return instance, nil
}

// ListAll constructs one fresh instance of every registered entry, in
// registration order. Entries whose factory returns nil are skipped.
func (r *Registry[T]) ListAll() []T {
	r.mu.RLock()
	factories := make([]Factory[T], 0, len(r.entries))
	for _, e := range r.entries {
		factories = append(factories, e.factory)
	}
	r.mu.RUnlock()

	instances := make([]T, 0, len(factories))
	for _, f := range factories {
		if instance := f(); !IsNil(instance) {
			instances = append(instances, instance)
		}
	}
	return instances
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}

// Describe returns name and doc of every entry in registration order.
func (r *Registry[T]) Describe() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		infos = append(infos, Info{Name: e.name, Doc: e.doc})
	}
	return infos
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
