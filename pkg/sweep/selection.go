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

package sweep

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/benchsweep/pkg/benchmark"
	"github.com/NVIDIA/benchsweep/pkg/errors"
)

// Selection activates Inputs on the type axis Axis of Benchmark, or of every
// benchmark that has such an axis when Benchmark is empty.
type Selection struct {
	Benchmark string
	Axis      string
	Inputs    []string
}

func (s Selection) String() string {
	prefix := ""
	if s.Benchmark != "" {
		prefix = s.Benchmark + ":"
	}
	return prefix + s.Axis + "=" + strings.Join(s.Inputs, ",")
}

// ParseSelection parses "[benchmark:]axis=input[,input...]". An empty input
// list deactivates the whole axis.
func ParseSelection(s string) (Selection, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return Selection{}, selectionError(s, "missing '='")
	}

	var sel Selection
	if bench, ax, found := strings.Cut(lhs, ":"); found {
		sel.Benchmark = strings.TrimSpace(bench)
		sel.Axis = strings.TrimSpace(ax)
		if sel.Benchmark == "" {
			return Selection{}, selectionError(s, "empty benchmark name")
		}
	} else {
		sel.Axis = strings.TrimSpace(lhs)
	}
	if sel.Axis == "" {
		return Selection{}, selectionError(s, "empty axis name")
	}

	sel.Inputs = []string{}
	for _, in := range strings.Split(rhs, ",") {
		if in = strings.TrimSpace(in); in != "" {
			sel.Inputs = append(sel.Inputs, in)
		}
	}
	return sel, nil
}

func selectionError(s, reason string) error {
	return errors.NewWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid selection %q: %s", s, reason),
		map[string]any{"selection": s})
}

// Apply applies sel to benchmarks. A named benchmark must exist and have the
// axis; an unnamed selection must match at least one benchmark. Errors from
// the type axis, such as unknown catalog entries, are returned unchanged.
func Apply(benchmarks []*benchmark.Benchmark, sel Selection) error {
	matched := 0
	for _, b := range benchmarks {
		if sel.Benchmark != "" && b.Name() != sel.Benchmark {
			continue
		}
		if sel.Benchmark == "" && !b.Axes().Has(sel.Axis) {
			continue
		}

		ta, err := b.Axes().TypeAxis(sel.Axis)
		if err != nil {
			return err
		}
		if err := ta.SetActiveInputs(sel.Inputs); err != nil {
			return err
		}
		matched++
	}

	if matched == 0 {
		return errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("selection %q matched no benchmark", sel),
			map[string]any{"selection": sel.String()})
	}
	return nil
}
