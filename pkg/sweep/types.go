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

// File is the top level of a sweep file.
type File struct {
	Version    string          `yaml:"version" validate:"required"`
	Benchmarks []BenchmarkSpec `yaml:"benchmarks" validate:"required,min=1,dive"`
}

// BenchmarkSpec describes one benchmark.
type BenchmarkSpec struct {
	Name       string         `yaml:"name" validate:"required"`
	Kind       string         `yaml:"kind,omitempty"`
	Devices    []int          `yaml:"devices,omitempty" validate:"dive,gte=0"`
	Thresholds *ThresholdSpec `yaml:"thresholds,omitempty"`
	Axes       []AxisSpec     `yaml:"axes,omitempty" validate:"dive"`
}

// ThresholdSpec overrides benchmark thresholds. Times are in seconds.
type ThresholdSpec struct {
	MinSamples *int64   `yaml:"min_samples,omitempty" validate:"omitempty,gte=1"`
	MinTime    *float64 `yaml:"min_time,omitempty" validate:"omitempty,gte=0"`
	MaxNoise   *float64 `yaml:"max_noise,omitempty" validate:"omitempty,gte=0"`
	SkipTime   *float64 `yaml:"skip_time,omitempty"`
	Timeout    *float64 `yaml:"timeout,omitempty" validate:"omitempty,gt=0"`
}

// AxisType names the axis variants a sweep file can declare.
type AxisType string

const (
	AxisTypeInt64  AxisType = "int64"
	AxisTypeString AxisType = "string"
	AxisTypeType   AxisType = "type"
)

// AxisSpec describes one axis. Values holds the inputs of int64 and string
// axes; Catalog and Active describe a type axis.
type AxisSpec struct {
	Name    string   `yaml:"name" validate:"required"`
	Type    AxisType `yaml:"type" validate:"required,oneof=int64 string type"`
	Pow2    bool     `yaml:"pow2,omitempty"`
	Values  []any    `yaml:"values,omitempty"`
	Catalog []string `yaml:"catalog,omitempty" validate:"required_if=Type type"`
	Active  []string `yaml:"active,omitempty"`
}
