// Package avoider defines the collision avoider role and its registry.
package avoider

import (
	"sync"

	"github.com/NVIDIA/path-follower/pkg/pose"
	"github.com/NVIDIA/path-follower/pkg/registry"
)

// Role is the registry role name for collision avoiders.
const Role = "collision avoider"

// Registered collision avoider names.
const (
	None           = "none"
	Simple         = "simple"
	PotentialField = "potential_field"
	Default        = "default_collision_avoider"
)

// CollisionAvoider constrains commands so the robot keeps clear of obstacles.
type CollisionAvoider interface {
	// Name returns the registered name of the implementation.
	Name() string
	// SetTransformListener injects the shared transform lookup used to bring
	// obstacle observations into the robot frame.
	SetTransformListener(l pose.TransformListener)
	// TransformListener returns the injected listener, or nil before wiring.
	TransformListener() pose.TransformListener
}

type base struct {
	listener pose.TransformListener
}

func (b *base) SetTransformListener(l pose.TransformListener) {
	b.listener = l
}

func (b *base) TransformListener() pose.TransformListener {
	return b.listener
}

// NoneAvoider lets every command through unchanged.
type NoneAvoider struct{ base }

func (*NoneAvoider) Name() string { return None }

// SimpleAvoider stops the robot when an obstacle enters a fixed box ahead.
type SimpleAvoider struct{ base }

func (*SimpleAvoider) Name() string { return Simple }

// PotentialFieldAvoider repels commands away from nearby obstacles.
type PotentialFieldAvoider struct{ base }

func (*PotentialFieldAvoider) Name() string { return PotentialField }

// DefaultAvoider scales velocity down with the free distance along the
// predicted course.
type DefaultAvoider struct{ base }

func (*DefaultAvoider) Name() string { return Default }

// NewRegistry returns an unsealed registry holding the built-in avoiders.
func NewRegistry() *registry.Registry[CollisionAvoider] {
	reg := registry.New[CollisionAvoider](Role)
	reg.MustRegister(None, func() CollisionAvoider { return &NoneAvoider{} },
		registry.WithDoc("no collision avoidance"))
	reg.MustRegister(Default, func() CollisionAvoider { return &DefaultAvoider{} },
		registry.WithDoc("slow down along the predicted course"))
	reg.MustRegister(Simple, func() CollisionAvoider { return &SimpleAvoider{} },
		registry.WithDoc("stop for obstacles in a box ahead"))
	reg.MustRegister(PotentialField, func() CollisionAvoider { return &PotentialFieldAvoider{} },
		registry.WithDoc("repulsive potential field"))
	return reg
}

var defaultRegistry = sync.OnceValue(func() *registry.Registry[CollisionAvoider] {
	reg := NewRegistry()
	reg.Seal()
	return reg
})

// DefaultRegistry returns the sealed process-wide avoider registry.
func DefaultRegistry() *registry.Registry[CollisionAvoider] {
	return defaultRegistry()
}
