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

import "slices"

// StringAxis sweeps over literal strings.
type StringAxis struct {
	base
	inputs []string
}

// NewStringAxis returns an empty string axis.
func NewStringAxis(name string) *StringAxis {
	return &StringAxis{base: base{name: name}}
}

// SetInputs replaces the inputs.
func (a *StringAxis) SetInputs(inputs []string) {
	a.inputs = slices.Clone(inputs)
}

func (a *StringAxis) Kind() Kind { return KindString }

func (a *StringAxis) Size() int { return len(a.inputs) }

// Inputs returns a copy of the inputs.
func (a *StringAxis) Inputs() []string { return slices.Clone(a.inputs) }

func (a *StringAxis) Value(i int) string { return a.inputs[i] }

func (a *StringAxis) InputString(i int) string { return a.inputs[i] }

func (a *StringAxis) Description(int) string { return "" }

func (a *StringAxis) FlagsString() string { return "" }

func (a *StringAxis) clone() Axis {
	return &StringAxis{base: a.base, inputs: slices.Clone(a.inputs)}
}
