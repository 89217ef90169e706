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

// Package defaults provides centralized configuration constants for the path follower.
//
// This package defines the local planner tuning values, controller limits and
// role names used when no configuration file overrides them. Centralizing these
// values ensures consistency between the options loader, the CLI and tests.
//
// # Categories
//
//   - Planner timing: update interval of the local planner loop
//   - Planner search: node budget, depth and expansion knobs
//   - Planner safety: distances kept to obstacles and to the path
//   - Controller limits: velocity bounds and goal tolerance
//   - Role names: controller, planner and avoider picked by default
//   - Server: HTTP timeouts, rate limits and body size of the API daemon
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/path-follower/pkg/defaults"
//
//	interval := defaults.PlannerUpdateInterval
package defaults
