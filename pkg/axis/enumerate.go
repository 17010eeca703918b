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

package axis

import (
	"iter"

	"github.com/NVIDIA/benchsweep/pkg/values"
)

// Configurations yields one store per point of the sweep's cross product.
// The first axis varies fastest; type axes contribute only active entries.
// Each yielded store is freshly allocated and owned by the caller.
//
// Numeric axes store their effective value with SetInt64, string axes their
// input with SetString, and type axes their catalog identity with SetString.
// The collection must not be modified while iterating.
func (c *Collection) Configurations() iter.Seq[*values.Named] {
	return func(yield func(*values.Named) bool) {
		positions := make([][]int, len(c.axes))
		for i, a := range c.axes {
			positions[i] = sweepPositions(a)
			if len(positions[i]) == 0 {
				return
			}
		}

		cursor := make([]int, len(c.axes))
		for {
			cfg := &values.Named{}
			for i, a := range c.axes {
				setAxisValue(cfg, a, positions[i][cursor[i]])
			}
			if !yield(cfg) {
				return
			}

			i := 0
			for ; i < len(cursor); i++ {
				cursor[i]++
				if cursor[i] < len(positions[i]) {
					break
				}
				cursor[i] = 0
			}
			if i == len(cursor) {
				return
			}
		}
	}
}

func sweepPositions(a Axis) []int {
	if ta, ok := a.(*TypeAxis); ok {
		return ta.ActiveIndices()
	}
	out := make([]int, a.Size())
	for i := range out {
		out[i] = i
	}
	return out
}

func setAxisValue(cfg *values.Named, a Axis, i int) {
	switch a := a.(type) {
	case *Int64Axis:
		cfg.SetInt64(a.Name(), a.Value(i))
	case *StringAxis:
		cfg.SetString(a.Name(), a.Value(i))
	case *TypeAxis:
		cfg.SetString(a.Name(), a.InputString(i))
	}
}
