// Package planner defines the local planner role and its registry.
package planner

import (
	"fmt"
	"sync"
	"time"

	"github.com/NVIDIA/path-follower/pkg/controller"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/pose"
	"github.com/NVIDIA/path-follower/pkg/registry"
)

// Role is the registry role name for local planners.
const Role = "local planner"

// Registered local planner names.
const (
	Null        = "null"
	AStar       = "astar"
	AStarStatic = "astar_static"
	BFS         = "bfs"
	RRT         = "rrt"
	ThetaStar   = "thetastar"
)

// LocalPlanner adjusts the global path into a locally feasible one.
type LocalPlanner interface {
	// Name returns the registered name of the implementation.
	Name() string
	// Init wires the planner to the controller it feeds and the shared pose
	// tracker, and sets how often it replans.
	Init(ctrl controller.Controller, tracker pose.Tracker, updateInterval time.Duration) error
	// SetParams replaces all tuning parameters at once.
	SetParams(p options.LocalPlannerParameters)
	// Params returns the current tuning parameters.
	Params() options.LocalPlannerParameters
	// IsNull reports whether the planner passes the global path through
	// without local planning.
	IsNull() bool
	// Initialized reports whether Init completed successfully.
	Initialized() bool
}

type base struct {
	mu          sync.RWMutex
	ctrl        controller.Controller
	tracker     pose.Tracker
	interval    time.Duration
	params      options.LocalPlannerParameters
	initialized bool
}

func (b *base) Init(ctrl controller.Controller, tracker pose.Tracker, updateInterval time.Duration) error {
	switch {
	case ctrl == nil:
		return fmt.Errorf("controller is nil")
	case tracker == nil:
		return fmt.Errorf("pose tracker is nil")
	case updateInterval <= 0:
		return fmt.Errorf("update interval must be positive, got %s", updateInterval)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.ctrl = ctrl
	b.tracker = tracker
	b.interval = updateInterval
	b.initialized = true
	return nil
}

func (b *base) SetParams(p options.LocalPlannerParameters) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.params = p
}

func (b *base) Params() options.LocalPlannerParameters {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.params
}

func (b *base) Initialized() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.initialized
}

// UpdateInterval returns the replanning interval set by Init.
func (b *base) UpdateInterval() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.interval
}

// NullPlanner forwards the global path unchanged.
type NullPlanner struct{ base }

func (*NullPlanner) Name() string { return Null }

func (*NullPlanner) IsNull() bool { return true }

// SearchPlanner plans locally with a tree or graph search.
type SearchPlanner struct {
	base
	algorithm string
}

// NewSearchPlanner creates a search planner for the named algorithm.
func NewSearchPlanner(algorithm string) *SearchPlanner {
	return &SearchPlanner{algorithm: algorithm}
}

func (p *SearchPlanner) Name() string { return p.algorithm }

func (*SearchPlanner) IsNull() bool { return false }

// NewRegistry returns an unsealed registry holding the built-in planners.
func NewRegistry() *registry.Registry[LocalPlanner] {
	reg := registry.New[LocalPlanner](Role)
	reg.MustRegister(Null, func() LocalPlanner { return &NullPlanner{} },
		registry.WithDoc("no local planning"))

	search := []struct{ name, doc string }{
		{AStar, "A* over curvature-constrained expansions"},
		{AStarStatic, "A* on a static obstacle snapshot"},
		{BFS, "breadth-first expansion"},
		{RRT, "rapidly-exploring random tree"},
		{ThetaStar, "any-angle Theta*"},
	}
	for _, s := range search {
		reg.MustRegister(s.name, func() LocalPlanner { return NewSearchPlanner(s.name) },
			registry.WithDoc(s.doc))
	}
	return reg
}

var defaultRegistry = sync.OnceValue(func() *registry.Registry[LocalPlanner] {
	reg := NewRegistry()
	reg.Seal()
	return reg
})

// DefaultRegistry returns the sealed process-wide planner registry.
func DefaultRegistry() *registry.Registry[LocalPlanner] {
	return defaultRegistry()
}
