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

package pose

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var zAxis = r3.Vec{Z: 1}

// Transform is a planar rigid transform: a rotation about the z axis
// followed by a translation.
type Transform struct {
	Translation r3.Vec  `json:"translation" yaml:"translation"`
	Yaw         float64 `json:"yaw" yaml:"yaw"`
}

// Identity returns the transform that maps every point onto itself.
func Identity() Transform {
	return Transform{}
}

// Apply maps p from the transform's source frame into its target frame.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(r3.NewRotation(t.Yaw, zAxis).Rotate(p), t.Translation)
}

// Compose returns t∘o, the transform that first applies o and then t.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Translation: t.Apply(o.Translation),
		Yaw:         normalizeAngle(t.Yaw + o.Yaw),
	}
}

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	rot := r3.NewRotation(-t.Yaw, zAxis)
	return Transform{
		Translation: r3.Scale(-1, rot.Rotate(t.Translation)),
		Yaw:         normalizeAngle(-t.Yaw),
	}
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
