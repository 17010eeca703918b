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
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/benchsweep/pkg/axis"
	"github.com/NVIDIA/benchsweep/pkg/benchmark"
	"github.com/NVIDIA/benchsweep/pkg/header"
	"github.com/NVIDIA/benchsweep/pkg/registry"
	"github.com/NVIDIA/benchsweep/pkg/serializer"
)

// AxisSummary describes one axis of a benchmark.
type AxisSummary struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Size   int    `json:"size" yaml:"size"`
	Active int    `json:"active" yaml:"active"`
	Flags  string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// BenchmarkSummary describes one registered benchmark.
type BenchmarkSummary struct {
	Name           string               `json:"name" yaml:"name"`
	Kind           string               `json:"kind" yaml:"kind"`
	Devices        []int                `json:"devices" yaml:"devices"`
	Axes           []AxisSummary        `json:"axes" yaml:"axes"`
	Configurations uint64               `json:"configurations" yaml:"configurations"`
	Thresholds     benchmark.Thresholds `json:"thresholds" yaml:"thresholds"`
}

// List is the report of the list command.
type List struct {
	header.Header `json:",inline" yaml:",inline"`

	Benchmarks []BenchmarkSummary `json:"benchmarks" yaml:"benchmarks"`
}

func (r List) Columns() []string {
	return []string{"BENCHMARK", "KIND", "DEVICES", "AXES", "CONFIGS"}
}

func (r List) Rows() [][]string {
	rows := make([][]string, 0, len(r.Benchmarks))
	for _, b := range r.Benchmarks {
		devices := make([]string, len(b.Devices))
		for i, d := range b.Devices {
			devices[i] = strconv.Itoa(d)
		}
		axes := make([]string, len(b.Axes))
		for i, a := range b.Axes {
			axes[i] = a.Label()
		}
		rows = append(rows, []string{
			b.Name,
			b.Kind,
			strings.Join(devices, ","),
			strings.Join(axes, " "),
			serializer.Count(b.Configurations),
		})
	}
	return rows
}

// Label renders e.g. "Elements[3,pow2]" or "T[2/5]".
func (a AxisSummary) Label() string {
	size := strconv.Itoa(a.Size)
	if a.Type == axis.KindType.String() {
		size = strconv.Itoa(a.Active) + "/" + size
	}
	if a.Flags != "" {
		size += "," + a.Flags
	}
	return a.Name + "[" + size + "]"
}

// Summarize describes b.
func Summarize(b *benchmark.Benchmark) (BenchmarkSummary, error) {
	n, err := b.ConfigCount()
	if err != nil {
		return BenchmarkSummary{}, fmt.Errorf("benchmark %q: %w", b.Name(), err)
	}

	s := BenchmarkSummary{
		Name:           b.Name(),
		Kind:           b.Kind().KindName(),
		Configurations: n,
		Thresholds:     b.Thresholds(),
	}
	for _, d := range b.Devices() {
		s.Devices = append(s.Devices, d.ID())
	}
	for _, a := range b.Axes().Axes() {
		s.Axes = append(s.Axes, AxisSummary{
			Name:   a.Name(),
			Type:   a.Kind().String(),
			Size:   a.Size(),
			Active: axis.EffectiveSize(a),
			Flags:  a.FlagsString(),
		})
	}
	return s, nil
}

// BuildList summarizes every benchmark in reg and exports their
// configuration counts.
func BuildList(reg *registry.Registry) (List, error) {
	var r List
	r.Init(header.KindBenchmarkList, header.APIVersion)
	for _, b := range reg.Benchmarks() {
		s, err := Summarize(b)
		if err != nil {
			return List{}, err
		}
		r.Benchmarks = append(r.Benchmarks, s)
	}
	reg.Observe()
	return r, nil
}
