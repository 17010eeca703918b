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

// Package axis models the parameter space of a benchmark sweep.
//
// # Axis Kinds
//
// An Axis is one dimension of the sweep. The set of kinds is closed:
//
//   - Int64Axis: ordered int64 inputs, optionally transformed to powers of two
//   - StringAxis: ordered literal strings
//   - TypeAxis: a fixed catalog of type identities with an activation mask
//
// Code that needs kind-specific behavior switches on the concrete type:
//
//	switch a := ax.(type) {
//	case *axis.TypeAxis:
//	    n = a.ActiveCount()
//	case *axis.Int64Axis, *axis.StringAxis:
//	    n = a.Size()
//	}
//
// EffectiveSize does exactly this and is what configuration counts use.
//
// # Power-of-two Axes
//
//	ax := axis.NewInt64Axis("Elements")
//	err := ax.SetInputs([]int64{10, 16, 20}, axis.FlagPowerOfTwo)
//	// ax.Value(0) == 1024, ax.Description(0) == "2^10 = 1024"
//
// Inputs outside [0, 64) fail with errors.ErrCodeOutOfRange and leave the
// axis unchanged.
//
// # Type Axes
//
// The catalog is fixed at construction. Only active entries take part in a
// sweep:
//
//	ta := axis.NewTypeAxis("T", []string{"i", "f", "d"})
//	err := ta.SetActiveInputs([]string{"i", "d"}) // replaces the whole mask
//	ta.ActiveCount()                               // 2
//
// # Collections
//
// A Collection is the ordered set of axes of one benchmark. ConfigCount
// multiplies the effective sizes exactly, and Configurations yields one
// values.Named per point of the cross product with the first axis varying
// fastest.
package axis
