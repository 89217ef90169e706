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
	"log/slog"
	"time"

	"github.com/NVIDIA/path-follower/pkg/serializer"
)

// File is the on-disk shape of the options. Durations are strings accepted
// by time.ParseDuration so all formats share one representation.
type File struct {
	Controller       string `json:"controller" yaml:"controller" toml:"controller"`
	LocalPlanner     string `json:"localPlanner" yaml:"localPlanner" toml:"local_planner"`
	CollisionAvoider string `json:"collisionAvoider" yaml:"collisionAvoider" toml:"collision_avoider"`

	MaxVelocity   float64 `json:"maxVelocity" yaml:"maxVelocity" toml:"max_velocity"`
	MinVelocity   float64 `json:"minVelocity" yaml:"minVelocity" toml:"min_velocity"`
	GoalTolerance float64 `json:"goalTolerance" yaml:"goalTolerance" toml:"goal_tolerance"`

	Planner PlannerFile `json:"localPlannerParameters" yaml:"localPlannerParameters" toml:"local_planner_parameters"`
}

// PlannerFile mirrors LocalPlannerParameters with a string update interval.
type PlannerFile struct {
	UpdateInterval            string  `json:"updateInterval" yaml:"updateInterval" toml:"update_interval"`
	MaxNumNodes               int     `json:"maxNumNodes" yaml:"maxNumNodes" toml:"max_num_nodes"`
	CurveSegmentSubdivisions  int     `json:"curveSegmentSubdivisions" yaml:"curveSegmentSubdivisions" toml:"curve_segment_subdivisions"`
	DistanceToPathConstraint  float64 `json:"distanceToPathConstraint" yaml:"distanceToPathConstraint" toml:"distance_to_path_constraint"`
	SafetyDistanceSurrounding float64 `json:"safetyDistanceSurrounding" yaml:"safetyDistanceSurrounding" toml:"safety_distance_surrounding"`
	SafetyDistanceForward     float64 `json:"safetyDistanceForward" yaml:"safetyDistanceForward" toml:"safety_distance_forward"`
	MaxSteeringAngle          float64 `json:"maxSteeringAngle" yaml:"maxSteeringAngle" toml:"max_steering_angle"`
	IntermediateAngles        int     `json:"intermediateAngles" yaml:"intermediateAngles" toml:"intermediate_angles"`
	StepScale                 float64 `json:"stepScale" yaml:"stepScale" toml:"step_scale"`
	MaxDepth                  int     `json:"maxDepth" yaml:"maxDepth" toml:"max_depth"`
	Mu                        float64 `json:"mu" yaml:"mu" toml:"mu"`
	Ef                        float64 `json:"ef" yaml:"ef" toml:"ef"`
}

// NewFile returns a File holding the default options.
func NewFile() File {
	o := New()
	p := o.LocalPlanner()
	return File{
		Controller:       o.Controller(),
		LocalPlanner:     o.Planner(),
		CollisionAvoider: o.CollisionAvoider(),
		MaxVelocity:      o.MaxVelocity(),
		MinVelocity:      o.MinVelocity(),
		GoalTolerance:    o.GoalTolerance(),
		Planner: PlannerFile{
			UpdateInterval:            p.UpdateInterval.String(),
			MaxNumNodes:               p.MaxNumNodes,
			CurveSegmentSubdivisions:  p.CurveSegmentSubdivisions,
			DistanceToPathConstraint:  p.DistanceToPathConstraint,
			SafetyDistanceSurrounding: p.SafetyDistanceSurrounding,
			SafetyDistanceForward:     p.SafetyDistanceForward,
			MaxSteeringAngle:          p.MaxSteeringAngle,
			IntermediateAngles:        p.IntermediateAngles,
			StepScale:                 p.StepScale,
			MaxDepth:                  p.MaxDepth,
			Mu:                        p.Mu,
			Ef:                        p.Ef,
		},
	}
}

// Options converts the file into validated Options.
func (f File) Options() (*Options, error) {
	interval, err := time.ParseDuration(f.Planner.UpdateInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid update interval %q: %w", f.Planner.UpdateInterval, err)
	}

	o := New(
		WithComponents(f.Controller, f.LocalPlanner, f.CollisionAvoider),
		WithVelocity(f.MinVelocity, f.MaxVelocity),
		WithGoalTolerance(f.GoalTolerance),
		WithLocalPlanner(LocalPlannerParameters{
			UpdateInterval:            interval,
			MaxNumNodes:               f.Planner.MaxNumNodes,
			CurveSegmentSubdivisions:  f.Planner.CurveSegmentSubdivisions,
			DistanceToPathConstraint:  f.Planner.DistanceToPathConstraint,
			SafetyDistanceSurrounding: f.Planner.SafetyDistanceSurrounding,
			SafetyDistanceForward:     f.Planner.SafetyDistanceForward,
			MaxSteeringAngle:          f.Planner.MaxSteeringAngle,
			IntermediateAngles:        f.Planner.IntermediateAngles,
			StepScale:                 f.Planner.StepScale,
			MaxDepth:                  f.Planner.MaxDepth,
			Mu:                        f.Planner.Mu,
			Ef:                        f.Planner.Ef,
		}),
	)

	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Load reads options from a JSON, YAML or TOML file. Keys missing from the
// file keep their default values. An empty path returns the defaults.
func Load(path string) (*Options, error) {
	if path == "" {
		return New(), nil
	}

	f := NewFile()
	if err := serializer.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to load options: %w", err)
	}

	o, err := f.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid options in %s: %w", path, err)
	}

	slog.Debug("loaded options",
		"path", path,
		"controller", o.Controller(),
		"localPlanner", o.Planner(),
		"collisionAvoider", o.CollisionAvoider(),
	)
	return o, nil
}
