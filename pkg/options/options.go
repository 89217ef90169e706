// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package options

import (
	"fmt"
	"time"

	"github.com/NVIDIA/path-follower/pkg/defaults"
)

// LocalPlannerParameters holds the local planner tuning knobs. It is passed
// to planners as one value so a planner never sees a partial update.
type LocalPlannerParameters struct {
	UpdateInterval            time.Duration `json:"updateInterval" yaml:"updateInterval" toml:"update_interval"`
	MaxNumNodes               int           `json:"maxNumNodes" yaml:"maxNumNodes" toml:"max_num_nodes"`
	CurveSegmentSubdivisions  int           `json:"curveSegmentSubdivisions" yaml:"curveSegmentSubdivisions" toml:"curve_segment_subdivisions"`
	DistanceToPathConstraint  float64       `json:"distanceToPathConstraint" yaml:"distanceToPathConstraint" toml:"distance_to_path_constraint"`
	SafetyDistanceSurrounding float64       `json:"safetyDistanceSurrounding" yaml:"safetyDistanceSurrounding" toml:"safety_distance_surrounding"`
	SafetyDistanceForward     float64       `json:"safetyDistanceForward" yaml:"safetyDistanceForward" toml:"safety_distance_forward"`
	MaxSteeringAngle          float64       `json:"maxSteeringAngle" yaml:"maxSteeringAngle" toml:"max_steering_angle"`
	IntermediateAngles        int           `json:"intermediateAngles" yaml:"intermediateAngles" toml:"intermediate_angles"`
	StepScale                 float64       `json:"stepScale" yaml:"stepScale" toml:"step_scale"`
	MaxDepth                  int           `json:"maxDepth" yaml:"maxDepth" toml:"max_depth"`
	Mu                        float64       `json:"mu" yaml:"mu" toml:"mu"`
	Ef                        float64       `json:"ef" yaml:"ef" toml:"ef"`
}

// DefaultLocalPlannerParameters returns the built-in planner tuning.
func DefaultLocalPlannerParameters() LocalPlannerParameters {
	return LocalPlannerParameters{
		UpdateInterval:            defaults.PlannerUpdateInterval,
		MaxNumNodes:               defaults.PlannerMaxNumNodes,
		CurveSegmentSubdivisions:  defaults.PlannerCurveSegmentSubdivisions,
		DistanceToPathConstraint:  defaults.PlannerDistanceToPathConstraint,
		SafetyDistanceSurrounding: defaults.PlannerSafetyDistanceSurrounding,
		SafetyDistanceForward:     defaults.PlannerSafetyDistanceForward,
		MaxSteeringAngle:          defaults.PlannerMaxSteeringAngle,
		IntermediateAngles:        defaults.PlannerIntermediateAngles,
		StepScale:                 defaults.PlannerStepScale,
		MaxDepth:                  defaults.PlannerMaxDepth,
		Mu:                        defaults.PlannerMu,
		Ef:                        defaults.PlannerEf,
	}
}

// Validate checks the parameters are usable by a planner.
func (p LocalPlannerParameters) Validate() error {
	switch {
	case p.UpdateInterval <= 0:
		return fmt.Errorf("update interval must be positive, got %s", p.UpdateInterval)
	case p.MaxNumNodes <= 0:
		return fmt.Errorf("max num nodes must be positive, got %d", p.MaxNumNodes)
	case p.MaxDepth <= 0:
		return fmt.Errorf("max depth must be positive, got %d", p.MaxDepth)
	case p.CurveSegmentSubdivisions <= 0:
		return fmt.Errorf("curve segment subdivisions must be positive, got %d", p.CurveSegmentSubdivisions)
	case p.IntermediateAngles < 0:
		return fmt.Errorf("intermediate angles cannot be negative, got %d", p.IntermediateAngles)
	case p.StepScale <= 0:
		return fmt.Errorf("step scale must be positive, got %g", p.StepScale)
	case p.DistanceToPathConstraint < 0, p.SafetyDistanceSurrounding < 0, p.SafetyDistanceForward < 0:
		return fmt.Errorf("distances cannot be negative")
	case p.MaxSteeringAngle <= 0:
		return fmt.Errorf("max steering angle must be positive, got %g", p.MaxSteeringAngle)
	}
	return nil
}

// Options provides the immutable global options shared by the components of
// a driving configuration. Use the getters for read-only access.
type Options struct {
	// localPlanner holds the planner tuning pushed after assembly.
	localPlanner LocalPlannerParameters

	// maxVelocity is the controller's upper speed bound.
	maxVelocity float64

	// minVelocity is the controller's lower speed bound.
	minVelocity float64

	// goalTolerance is the distance at which the goal counts as reached.
	goalTolerance float64

	// controller, planner and collisionAvoider name the roles to assemble
	// when a request leaves them empty.
	controller       string
	planner          string
	collisionAvoider string
}

// LocalPlanner returns a copy of the planner parameters.
func (o *Options) LocalPlanner() LocalPlannerParameters {
	return o.localPlanner
}

// MaxVelocity returns the controller's upper speed bound.
func (o *Options) MaxVelocity() float64 {
	return o.maxVelocity
}

// MinVelocity returns the controller's lower speed bound.
func (o *Options) MinVelocity() float64 {
	return o.minVelocity
}

// GoalTolerance returns the goal tolerance in meters.
func (o *Options) GoalTolerance() float64 {
	return o.goalTolerance
}

// Controller returns the configured controller name.
func (o *Options) Controller() string {
	return o.controller
}

// Planner returns the configured local planner name.
func (o *Options) Planner() string {
	return o.planner
}

// CollisionAvoider returns the configured collision avoider name. Empty means
// the controller's default.
func (o *Options) CollisionAvoider() string {
	return o.collisionAvoider
}

// Validate checks if the Options have valid settings.
func (o *Options) Validate() error {
	if err := o.localPlanner.Validate(); err != nil {
		return fmt.Errorf("invalid local planner parameters: %w", err)
	}
	if o.maxVelocity <= 0 {
		return fmt.Errorf("max velocity must be positive, got %g", o.maxVelocity)
	}
	if o.minVelocity < 0 || o.minVelocity > o.maxVelocity {
		return fmt.Errorf("min velocity must be within [0, %g], got %g", o.maxVelocity, o.minVelocity)
	}
	if o.goalTolerance <= 0 {
		return fmt.Errorf("goal tolerance must be positive, got %g", o.goalTolerance)
	}
	return nil
}

type Option func(*Options)

// WithLocalPlanner sets the local planner parameters.
func WithLocalPlanner(p LocalPlannerParameters) Option {
	return func(o *Options) {
		o.localPlanner = p
	}
}

// WithVelocity sets the controller's speed bounds.
func WithVelocity(minVelocity, maxVelocity float64) Option {
	return func(o *Options) {
		o.minVelocity = minVelocity
		o.maxVelocity = maxVelocity
	}
}

// WithGoalTolerance sets the goal tolerance.
func WithGoalTolerance(tolerance float64) Option {
	return func(o *Options) {
		o.goalTolerance = tolerance
	}
}

// WithComponents sets the default role names. Empty values keep the current ones.
func WithComponents(controller, planner, collisionAvoider string) Option {
	return func(o *Options) {
		if controller != "" {
			o.controller = controller
		}
		if planner != "" {
			o.planner = planner
		}
		if collisionAvoider != "" {
			o.collisionAvoider = collisionAvoider
		}
	}
}

// New returns Options with default values.
func New(opts ...Option) *Options {
	o := &Options{
		localPlanner:     DefaultLocalPlannerParameters(),
		maxVelocity:      defaults.ControllerMaxVelocity,
		minVelocity:      defaults.ControllerMinVelocity,
		goalTolerance:    defaults.ControllerGoalTolerance,
		controller:       defaults.Controller,
		planner:          defaults.LocalPlanner,
		collisionAvoider: defaults.CollisionAvoider,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
