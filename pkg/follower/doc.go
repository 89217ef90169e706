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

// Package follower assembles driving configurations for the path follower.
//
// A driving configuration is one controller, one local planner and one
// collision avoider, each created by name from its registry and wired
// together in a fixed order:
//
//  1. the avoider receives the tracker's transform listener
//  2. the planner is initialized against the controller
//  3. the controller is initialized with the tracker and avoider
//  4. the tracker switches to local tracking unless the planner is "null"
//  5. the planner receives its configured parameters
//
// When a request names no collision avoider the controller's declared
// default is used. A controller without a default fails with MISSING_FIELD.
//
// # Usage
//
//	a, err := follower.NewAssembler(tracker, opts)
//	if err != nil {
//	    return err
//	}
//	cfg, err := a.Construct(follower.Request{
//	    Controller:   controller.MPC,
//	    LocalPlanner: planner.RRT,
//	})
//
// LoadAll creates one instance of every registered controller. ListComponents
// describes what the registries hold, optionally filtered by role.
//
// Errors are *errors.StructuredError with codes MISSING_FIELD,
// UNKNOWN_COMPONENT, ASSEMBLY_INVARIANT and INIT_FAILED. Construct never
// returns a partial configuration.
package follower
