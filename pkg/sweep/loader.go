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
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/benchsweep/pkg/axis"
	"github.com/NVIDIA/benchsweep/pkg/benchmark"
	"github.com/NVIDIA/benchsweep/pkg/errors"
	"github.com/NVIDIA/benchsweep/pkg/registry"
	"github.com/NVIDIA/benchsweep/pkg/version"
)

var validate = validator.New()

// Load reads the sweep file at path and registers its benchmarks into reg.
func Load(path string, reg *registry.Registry) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "read sweep file", err,
			map[string]any{"path": path})
	}
	return Parse(data, reg)
}

// Parse decodes and validates a sweep file and registers its benchmarks into
// reg. Nothing is registered unless every benchmark builds.
func Parse(data []byte, reg *registry.Registry) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "parse sweep YAML", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid sweep file", err)
	}

	v, warn, err := version.CheckFile(f.Version)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "unsupported sweep file version", err,
			map[string]any{"version": f.Version, "reader": version.Reader.String()})
	}
	if warn {
		slog.Warn("sweep file version differs from reader",
			"file", v.String(), "reader", version.Reader.String())
	}

	built := make([]*benchmark.Benchmark, 0, len(f.Benchmarks))
	for i := range f.Benchmarks {
		b, err := Build(&f.Benchmarks[i])
		if err != nil {
			code := errors.CodeOf(err)
			if code == "" {
				code = errors.ErrCodeInvalidRequest
			}
			return nil, errors.WrapWithContext(code,
				fmt.Sprintf("benchmark %q", f.Benchmarks[i].Name), err,
				map[string]any{"benchmark": f.Benchmarks[i].Name, "index": i})
		}
		built = append(built, b)
	}
	for _, b := range built {
		reg.Add(b)
	}
	return &f, nil
}

// Build turns one benchmark entry into a descriptor. Axis errors from the
// axis package are returned unchanged.
func Build(spec *BenchmarkSpec) (*benchmark.Benchmark, error) {
	kindName := spec.Kind
	if kindName == "" {
		kindName = benchmark.NoopKind
	}
	kind, err := benchmark.LookupKind(kindName)
	if err != nil {
		return nil, err
	}

	b := benchmark.New(spec.Name, kind)
	b.SetThresholds(resolveThresholds(spec.Thresholds))

	devices := spec.Devices
	if len(devices) == 0 {
		devices = []int{0}
	}
	b.SetDevices(devices)

	for _, as := range spec.Axes {
		if err := addAxis(b, as); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func resolveThresholds(ts *ThresholdSpec) benchmark.Thresholds {
	t := benchmark.DefaultThresholds()
	if ts == nil {
		return t
	}
	t.MinSamples = ptr.Deref(ts.MinSamples, t.MinSamples)
	t.MinTime = seconds(ts.MinTime, t.MinTime)
	t.MaxNoise = ptr.Deref(ts.MaxNoise, t.MaxNoise)
	t.SkipTime = seconds(ts.SkipTime, t.SkipTime)
	t.Timeout = seconds(ts.Timeout, t.Timeout)
	return t
}

func seconds(s *float64, def time.Duration) time.Duration {
	if s == nil {
		return def
	}
	return time.Duration(*s * float64(time.Second))
}

func addAxis(b *benchmark.Benchmark, as AxisSpec) error {
	switch as.Type {
	case AxisTypeInt64:
		inputs, err := int64Values(as)
		if err != nil {
			return err
		}
		flags := axis.FlagNone
		if as.Pow2 {
			flags = axis.FlagPowerOfTwo
		}
		_, err = b.AddInt64Axis(as.Name, inputs, flags)
		return err

	case AxisTypeString:
		inputs := make([]string, len(as.Values))
		for i, v := range as.Values {
			s, ok := v.(string)
			if !ok {
				return axisValueError(as, i, v)
			}
			inputs[i] = s
		}
		b.AddStringAxis(as.Name, inputs)
		return nil

	case AxisTypeType:
		ta := b.AddTypeAxis(as.Name, as.Catalog)
		if as.Active != nil {
			return ta.SetActiveInputs(as.Active)
		}
		return nil

	default:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("axis '%s' has unknown type '%s'", as.Name, as.Type),
			map[string]any{"axis": as.Name, "type": string(as.Type)})
	}
}

// int64Values accepts YAML integers, and floats that hold an exact integer.
func int64Values(as AxisSpec) ([]int64, error) {
	out := make([]int64, len(as.Values))
	for i, v := range as.Values {
		switch n := v.(type) {
		case int:
			out[i] = int64(n)
		case int64:
			out[i] = n
		case uint64:
			if n > math.MaxInt64 {
				return nil, axisValueError(as, i, v)
			}
			out[i] = int64(n)
		case float64:
			if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
				return nil, axisValueError(as, i, v)
			}
			out[i] = int64(n)
		default:
			return nil, axisValueError(as, i, v)
		}
	}
	return out, nil
}

func axisValueError(as AxisSpec, i int, v any) error {
	return errors.NewWithContext(errors.ErrCodeTypeMismatch,
		fmt.Sprintf("axis '%s' value %d (%v) is not a valid %s input", as.Name, i, v, as.Type),
		map[string]any{"axis": as.Name, "index": i, "type": string(as.Type)})
}
