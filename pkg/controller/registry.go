package controller

import (
	"fmt"
	"sync"

	"github.com/NVIDIA/path-follower/pkg/avoider"
	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/registry"
)

// Role is the registry role name for controllers.
const Role = "controller"

// Registry maps controller names to factories and to the name of each
// controller's preferred collision avoider.
type Registry struct {
	factories *registry.Registry[Controller]

	mu       sync.RWMutex
	defaults map[string]string
}

// NewEmptyRegistry creates a controller registry with no entries.
func NewEmptyRegistry() *Registry {
	return &Registry{
		factories: registry.New[Controller](Role),
		defaults:  make(map[string]string),
	}
}

// Register adds a controller factory. defaultAvoider may be empty when the
// controller has no preferred collision avoider.
func (r *Registry) Register(name string, factory registry.Factory[Controller], defaultAvoider string, opts ...registry.RegOption) error {
	if err := r.factories.Register(name, factory, opts...); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults[name] = defaultAvoider
	return nil
}

// MustRegister is a convenience function that panics on registration error.
func (r *Registry) MustRegister(name string, factory registry.Factory[Controller], defaultAvoider string, opts ...registry.RegOption) {
	if err := r.Register(name, factory, defaultAvoider, opts...); err != nil {
		panic(err)
	}
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.factories.Seal()
}

// Make constructs the controller registered under name.
func (r *Registry) Make(name string) (Controller, error) {
	return r.factories.Make(name)
}

// ListAll constructs one instance of every registered controller in
// registration order.
func (r *Registry) ListAll() []Controller {
	return r.factories.ListAll()
}

// Names returns the registered controller names in registration order.
func (r *Registry) Names() []string {
	return r.factories.Names()
}

// Len returns the number of registered controllers.
func (r *Registry) Len() int {
	return r.factories.Len()
}

// Describe returns name and doc of every registered controller.
func (r *Registry) Describe() []registry.Info {
	return r.factories.Describe()
}

// DefaultCollisionAvoiderFor returns the preferred collision avoider of the
// named controller. The result is empty when the controller declares none.
func (r *Registry) DefaultCollisionAvoiderFor(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ca, ok := r.defaults[name]
	if !ok {
		return "", errors.NewWithContext(errors.ErrCodeUnknownComponent,
			fmt.Sprintf("unknown %s %q", Role, name),
			map[string]any{"role": Role, "name": name})
	}
	return ca, nil
}

// NewRegistry returns an unsealed registry holding the built-in controllers.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.MustRegister(AckermannPurePursuit, func() Controller { return &PurePursuit{} },
		avoider.Default, registry.WithDoc("pure pursuit for Ackermann steering"))
	reg.MustRegister(AckermannStanley, func() Controller { return &Stanley{} },
		avoider.Default, registry.WithDoc("Stanley front-axle tracking"))
	reg.MustRegister(DifferentialOrthExp, func() Controller { return &OrthogonalExponential{} },
		avoider.Simple, registry.WithDoc("orthogonal exponential for differential drive"))
	reg.MustRegister(UnicycleInputScaling, func() Controller { return &InputScaling{} },
		avoider.Default, registry.WithDoc("input scaling for unicycle models"))
	reg.MustRegister(MPC, func() Controller { return &ModelPredictive{} },
		avoider.PotentialField, registry.WithDoc("model predictive control"))
	reg.MustRegister(DynamicWindow, func() Controller { return &DynamicWindowController{} },
		"", registry.WithDoc("dynamic window approach, no default avoider"))
	return reg
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	reg := NewRegistry()
	reg.Seal()
	return reg
})

// DefaultRegistry returns the sealed process-wide controller registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
