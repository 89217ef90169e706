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

// Package registry provides the name-keyed factory table used for every role
// of a driving configuration.
//
// A Registry is filled once at startup, sealed, and then only read:
//
//	reg := registry.New[Controller]("controller")
//	reg.MustRegister("mpc", newMPC, registry.WithDoc("model predictive control"))
//	reg.Seal()
//
//	ctrl, err := reg.Make("mpc")
//
// Make returns a StructuredError with code ErrCodeUnknownComponent when the
// name is not registered, and ErrCodeAssemblyInvariant when a factory breaks
// its contract by returning nil. ListAll constructs one fresh instance per
// entry in registration order, for discovery tooling.
package registry
