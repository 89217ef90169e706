// Package controller defines the controller role, its built-in variants and
// the registry that also knows each controller's preferred collision avoider.
package controller

import (
	"fmt"

	"github.com/NVIDIA/path-follower/pkg/avoider"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/pose"
)

// Registered controller names.
const (
	AckermannPurePursuit = "ackermann_purepursuit"
	AckermannStanley     = "ackermann_stanley"
	DifferentialOrthExp  = "differential_orthexp"
	UnicycleInputScaling = "unicycle_inputscaling"
	MPC                  = "mpc"
	DynamicWindow        = "dynamic_window"
)

// Controller computes actuation commands from the tracked pose and the
// planned path.
type Controller interface {
	// Name returns the registered name of the implementation.
	Name() string
	// Init wires the controller to the shared pose tracker, the collision
	// avoider of its configuration and the global options.
	Init(tracker pose.Tracker, ca avoider.CollisionAvoider, opts *options.Options) error
	// Initialized reports whether Init completed successfully.
	Initialized() bool
}

// base carries the wiring shared by all built-in controllers.
type base struct {
	tracker     pose.Tracker
	avoider     avoider.CollisionAvoider
	opts        *options.Options
	initialized bool
}

func (b *base) Init(tracker pose.Tracker, ca avoider.CollisionAvoider, opts *options.Options) error {
	switch {
	case tracker == nil:
		return fmt.Errorf("pose tracker is nil")
	case ca == nil:
		return fmt.Errorf("collision avoider is nil")
	case opts == nil:
		return fmt.Errorf("options are nil")
	}
	b.tracker = tracker
	b.avoider = ca
	b.opts = opts
	b.initialized = true
	return nil
}

func (b *base) Initialized() bool {
	return b.initialized
}

// CollisionAvoider returns the avoider injected by Init.
func (b *base) CollisionAvoider() avoider.CollisionAvoider {
	return b.avoider
}

// PurePursuit steers an Ackermann vehicle towards a look-ahead point.
type PurePursuit struct{ base }

func (*PurePursuit) Name() string { return AckermannPurePursuit }

// Stanley corrects heading and cross-track error at the front axle.
type Stanley struct{ base }

func (*Stanley) Name() string { return AckermannStanley }

// OrthogonalExponential drives a differential robot with exponential
// convergence on the orthogonal projection to the path.
type OrthogonalExponential struct{ base }

func (*OrthogonalExponential) Name() string { return DifferentialOrthExp }

// InputScaling follows the path with a unicycle model using input scaling.
type InputScaling struct{ base }

func (*InputScaling) Name() string { return UnicycleInputScaling }

// ModelPredictive optimises commands over a receding horizon.
type ModelPredictive struct{ base }

func (*ModelPredictive) Name() string { return MPC }

// DynamicWindowController samples admissible velocities and scores them.
// It declares no default collision avoider.
type DynamicWindowController struct{ base }

func (*DynamicWindowController) Name() string { return DynamicWindow }
