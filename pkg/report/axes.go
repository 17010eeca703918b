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

package report

import (
	"strconv"

	"github.com/NVIDIA/benchsweep/pkg/axis"
	"github.com/NVIDIA/benchsweep/pkg/benchmark"
	"github.com/NVIDIA/benchsweep/pkg/header"
	"github.com/NVIDIA/benchsweep/pkg/typename"
)

// AxisInput is one input of one axis.
type AxisInput struct {
	Axis        string `json:"axis" yaml:"axis"`
	Index       int    `json:"index" yaml:"index"`
	Input       string `json:"input" yaml:"input"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Flags       string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Active      bool   `json:"active" yaml:"active"`
}

// Axes is the report of the axes command.
type Axes struct {
	header.Header `json:",inline" yaml:",inline"`

	Benchmark string      `json:"benchmark" yaml:"benchmark"`
	Inputs    []AxisInput `json:"inputs" yaml:"inputs"`
}

func (r Axes) Columns() []string {
	return []string{"AXIS", "INDEX", "INPUT", "DESCRIPTION", "FLAGS", "ACTIVE"}
}

func (r Axes) Rows() [][]string {
	rows := make([][]string, 0, len(r.Inputs))
	for _, in := range r.Inputs {
		rows = append(rows, []string{
			in.Axis,
			strconv.Itoa(in.Index),
			in.Input,
			in.Description,
			in.Flags,
			strconv.FormatBool(in.Active),
		})
	}
	return rows
}

// BuildAxes lists every input of every axis of b.
func BuildAxes(b *benchmark.Benchmark) (Axes, error) {
	r := Axes{Benchmark: b.Name()}
	r.Init(header.KindAxisList, header.APIVersion)
	for _, a := range b.Axes().Axes() {
		for i := 0; i < a.Size(); i++ {
			in := AxisInput{
				Axis:        a.Name(),
				Index:       i,
				Input:       a.InputString(i),
				Description: a.Description(i),
				Flags:       a.FlagsString(),
				Active:      true,
			}
			if ta, ok := a.(*axis.TypeAxis); ok {
				active, err := ta.IsActiveIndex(i)
				if err != nil {
					return Axes{}, err
				}
				in.Active = active
				if in.Description == "" {
					in.Description = typename.Demangle(in.Input)
				}
			}
			r.Inputs = append(r.Inputs, in)
		}
	}
	return r, nil
}
