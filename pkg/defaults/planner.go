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

package defaults

import "time"

// Planner timing.
const (
	// PlannerUpdateInterval is how often the local planner recomputes its path.
	PlannerUpdateInterval = 100 * time.Millisecond
)

// Planner search limits.
const (
	// PlannerMaxNumNodes bounds the number of nodes a search may expand.
	PlannerMaxNumNodes = 400

	// PlannerMaxDepth bounds the depth of the search tree.
	PlannerMaxDepth = 3

	// PlannerCurveSegmentSubdivisions is the number of samples per curve segment.
	PlannerCurveSegmentSubdivisions = 10

	// PlannerIntermediateAngles is the number of steering angles between the
	// extremes tried at each expansion.
	PlannerIntermediateAngles = 2

	// PlannerStepScale scales the length of each expansion step.
	PlannerStepScale = 1.0

	// PlannerMaxSteeringAngle is the steering limit in degrees.
	PlannerMaxSteeringAngle = 20.0

	// PlannerMu weights the path-distance term of the scoring function.
	PlannerMu = 0.5

	// PlannerEf weights the curvature term of the scoring function.
	PlannerEf = 1.0
)

// Planner safety distances, in meters.
const (
	// PlannerDistanceToPathConstraint is the maximum lateral distance from the global path.
	PlannerDistanceToPathConstraint = 0.5

	// PlannerSafetyDistanceSurrounding is the clearance kept around the robot.
	PlannerSafetyDistanceSurrounding = 0.3

	// PlannerSafetyDistanceForward is the clearance kept in the driving direction.
	PlannerSafetyDistanceForward = 0.4
)

// Controller limits.
const (
	// ControllerMaxVelocity is the upper speed bound in m/s.
	ControllerMaxVelocity = 2.0

	// ControllerMinVelocity is the lower speed bound in m/s.
	ControllerMinVelocity = 0.1

	// ControllerGoalTolerance is the distance in meters at which the goal counts as reached.
	ControllerGoalTolerance = 0.15
)

// Role names used when neither the request nor the options name one.
const (
	Controller       = "ackermann_purepursuit"
	LocalPlanner     = "null"
	CollisionAvoider = ""
)
