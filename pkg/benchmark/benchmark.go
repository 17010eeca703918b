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

package benchmark

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/benchsweep/pkg/axis"
	"github.com/NVIDIA/benchsweep/pkg/defaults"
	"github.com/NVIDIA/benchsweep/pkg/device"
	"github.com/NVIDIA/benchsweep/pkg/errors"
	"github.com/NVIDIA/benchsweep/pkg/progress"
)

// Thresholds controls when the execution engine stops sampling a
// configuration.
type Thresholds struct {
	MinSamples int64         `json:"minSamples" yaml:"minSamples"`
	MinTime    time.Duration `json:"minTime" yaml:"minTime"`
	MaxNoise   float64       `json:"maxNoise" yaml:"maxNoise"`
	SkipTime   time.Duration `json:"skipTime" yaml:"skipTime"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultThresholds returns the thresholds a new benchmark starts with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSamples: defaults.MinSamples,
		MinTime:    defaults.MinTime,
		MaxNoise:   defaults.MaxNoise,
		SkipTime:   defaults.SkipTime,
		Timeout:    defaults.Timeout,
	}
}

// Benchmark is a benchmark descriptor. Configuration methods are meant for
// the single-threaded registration phase; AddResult and Progress may be used
// concurrently once a clone is being executed.
type Benchmark struct {
	name       string
	kind       Kind
	axes       axis.Collection
	devices    []device.Info
	thresholds Thresholds

	runID    uuid.UUID
	progress *progress.Counter

	mu      sync.Mutex
	results []*State
}

// New returns a benchmark with default thresholds, no axes and no devices.
// A nil kind falls back to the built-in noop kind.
func New(name string, kind Kind) *Benchmark {
	if kind == nil {
		kind = NewFuncKind(NoopKind, nil)
	}
	return &Benchmark{
		name:       name,
		kind:       kind,
		thresholds: DefaultThresholds(),
		runID:      uuid.New(),
		progress:   progress.NewCounter(),
	}
}

func (b *Benchmark) Name() string { return b.name }

func (b *Benchmark) Kind() Kind { return b.kind }

// RunID identifies this instance. Every clone gets a new one.
func (b *Benchmark) RunID() uuid.UUID { return b.runID }

// Axes returns the benchmark's own collection; changes through it are
// visible to the benchmark.
func (b *Benchmark) Axes() *axis.Collection { return &b.axes }

// AddInt64Axis adds a numeric axis. On error nothing is added.
func (b *Benchmark) AddInt64Axis(name string, inputs []int64, flags axis.Flags) (*axis.Int64Axis, error) {
	return b.axes.AddInt64Axis(name, inputs, flags)
}

func (b *Benchmark) AddStringAxis(name string, inputs []string) *axis.StringAxis {
	return b.axes.AddStringAxis(name, inputs)
}

// AddTypeAxis adds a type axis with every catalog entry active.
func (b *Benchmark) AddTypeAxis(name string, catalog []string) *axis.TypeAxis {
	return b.axes.AddTypeAxis(name, catalog)
}

// SetDevices replaces the device list. Duplicate ids are kept.
func (b *Benchmark) SetDevices(ids []int) *Benchmark {
	b.devices = device.FromIDs(ids)
	return b
}

func (b *Benchmark) AddDevice(id int) *Benchmark {
	b.devices = append(b.devices, device.New(id))
	return b
}

func (b *Benchmark) Devices() []device.Info { return slices.Clone(b.devices) }

func (b *Benchmark) Thresholds() Thresholds { return b.thresholds }

func (b *Benchmark) SetThresholds(t Thresholds) *Benchmark {
	b.thresholds = t
	return b
}

func (b *Benchmark) SetMinSamples(n int64) *Benchmark {
	b.thresholds.MinSamples = n
	return b
}

func (b *Benchmark) SetMinTime(d time.Duration) *Benchmark {
	b.thresholds.MinTime = d
	return b
}

func (b *Benchmark) SetMaxNoise(f float64) *Benchmark {
	b.thresholds.MaxNoise = f
	return b
}

// SetSkipTime sets the warm-up skip threshold; negative disables it.
func (b *Benchmark) SetSkipTime(d time.Duration) *Benchmark {
	b.thresholds.SkipTime = d
	return b
}

func (b *Benchmark) SetTimeout(d time.Duration) *Benchmark {
	b.thresholds.Timeout = d
	return b
}

// ConfigCount returns the number of atomic runs a full sweep performs: the
// product of every axis's effective size times the device count. It fails
// with OUT_OF_RANGE when the product does not fit in a uint64.
func (b *Benchmark) ConfigCount() (uint64, error) {
	return axis.MulCount(uint64(len(b.devices)), b.axes.Axes()...)
}

// Clone returns an independent copy of the configuration with fresh state.
func (b *Benchmark) Clone() *Benchmark {
	return &Benchmark{
		name:       b.name,
		kind:       b.kind.NewInstance(),
		axes:       b.axes.Clone(),
		devices:    slices.Clone(b.devices),
		thresholds: b.thresholds,
		runID:      uuid.New(),
		progress:   progress.NewCounter(),
	}
}

// Progress returns the benchmark's progress counter.
func (b *Benchmark) Progress() *progress.Counter { return b.progress }

// maxPrealloc caps the initial capacity States reserves.
const maxPrealloc = 1 << 16

// States materializes one state per device and configuration, devices
// outermost, and sets the progress total to their number. It stops with
// ErrCodeTimeout once ctx's deadline passes.
func (b *Benchmark) States(ctx context.Context) ([]*State, error) {
	n, err := b.ConfigCount()
	if err != nil {
		return nil, err
	}

	states := make([]*State, 0, min(n, maxPrealloc))
	for _, dev := range b.devices {
		for cfg := range b.axes.Configurations() {
			if err := ctx.Err(); err != nil {
				return nil, errors.WrapContext("enumeration of "+b.name+" cancelled", err)
			}
			states = append(states, &State{Device: dev, Values: cfg})
		}
	}
	b.progress.SetTotal(int64(len(states)))
	return states, nil
}

// AddResult records a finished state and advances progress.
func (b *Benchmark) AddResult(s *State) {
	b.mu.Lock()
	b.results = append(b.results, s)
	b.mu.Unlock()
	b.progress.AddCompleted(1)
}

// Results returns the recorded states in completion order.
func (b *Benchmark) Results() []*State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.results)
}

// Execute runs s through the benchmark's kind and records it. Skipped
// states are recorded without running. Kinds that cannot run are rejected.
func (b *Benchmark) Execute(ctx context.Context, s *State) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapContext("execution cancelled", err)
	}

	if !s.IsSkipped() {
		r, ok := b.kind.(Runner)
		if !ok {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"benchmark kind "+b.kind.KindName()+" cannot run states",
				map[string]any{"benchmark": b.name, "kind": b.kind.KindName()})
		}
		if err := r.Run(ctx, s); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInternal, "benchmark "+b.name+" failed", err,
				map[string]any{"benchmark": b.name, "device": s.Device.ID()})
		}
	}
	b.AddResult(s)
	return nil
}

// ConfigEqual reports whether a and b share name, kind, axes, devices and
// thresholds. State is ignored.
func ConfigEqual(a, b *Benchmark) bool {
	return a.name == b.name &&
		a.kind.KindName() == b.kind.KindName() &&
		a.axes.Equal(&b.axes) &&
		slices.Equal(a.devices, b.devices) &&
		a.thresholds == b.thresholds
}
