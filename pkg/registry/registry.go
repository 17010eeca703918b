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

package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/NVIDIA/benchsweep/pkg/benchmark"
	"github.com/NVIDIA/benchsweep/pkg/errors"
	"github.com/NVIDIA/benchsweep/pkg/progress"
)

// Registry is an ordered collection of benchmark descriptors.
type Registry struct {
	benchmarks []*benchmark.Benchmark
	mu         sync.RWMutex
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Default returns the process-wide registry, creating it on first use.
var Default = sync.OnceValue(New)

// Add stores b and returns it. The pointer stays valid, and keeps referring
// to the registered descriptor, for the registry's lifetime.
func (r *Registry) Add(b *benchmark.Benchmark) *benchmark.Benchmark {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.benchmarks, func(o *benchmark.Benchmark) bool { return o.Name() == b.Name() }) {
		slog.Warn("duplicate benchmark name, lookups return the first", "benchmark", b.Name())
	}

	r.benchmarks = append(r.benchmarks, b)
	slog.Debug("registered benchmark", "benchmark", b.Name(), "kind", b.Kind().KindName())
	return b
}

// Get returns the first benchmark registered as name.
func (r *Registry) Get(name string) (*benchmark.Benchmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.benchmarks {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("no benchmark named '%s'", name),
		map[string]any{"benchmark": name})
}

// Clone returns a clone of every registered benchmark in registration order.
func (r *Registry) Clone() []*benchmark.Benchmark {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*benchmark.Benchmark, len(r.benchmarks))
	for i, b := range r.benchmarks {
		out[i] = b.Clone()
	}
	clonesTotal.Add(float64(len(out)))
	slog.Debug("cloned benchmarks", "count", len(out))
	return out
}

// Benchmarks returns the registered descriptors themselves, in order.
func (r *Registry) Benchmarks() []*benchmark.Benchmark {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.benchmarks)
}

// Names returns the registered names in order, duplicates included.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.benchmarks))
	for i, b := range r.benchmarks {
		names[i] = b.Name()
	}
	return names
}

// Duplicates returns every name registered more than once, in order of
// first appearance.
func (r *Registry) Duplicates() []string {
	seen := make(map[string]int)
	var dups []string
	for _, name := range r.Names() {
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

// Count returns the number of registered benchmarks.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.benchmarks)
}

// IsEmpty reports whether nothing has been registered.
func (r *Registry) IsEmpty() bool {
	return r.Count() == 0
}

// Observe exports the size of r and each benchmark's current configuration
// count. Benchmarks whose count overflows are skipped and logged.
func (r *Registry) Observe() {
	benchmarks := r.Benchmarks()
	registeredBenchmarks.Set(float64(len(benchmarks)))
	for _, b := range benchmarks {
		n, err := b.ConfigCount()
		if err != nil {
			slog.Warn("skipping configuration count", "benchmark", b.Name(), "error", err)
			continue
		}
		benchmarkConfigurations.WithLabelValues(b.Name()).Set(float64(n))
	}
}

// Forget drops every metric exported for the benchmarks of r, including the
// progress gauges of their clones.
func (r *Registry) Forget() {
	registeredBenchmarks.Set(0)
	for _, name := range r.Names() {
		benchmarkConfigurations.DeleteLabelValues(name)
		progress.Forget(name)
	}
}
