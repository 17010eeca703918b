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

// Package progress holds the counters an execution engine reports against
// while it drives a benchmark's states.
//
// A Counter only stores numbers; it never computes them. The owner sets the
// total once the state space is known and advances the completed count as
// states finish. Counters are safe for concurrent use.
//
// Observe publishes a snapshot of a counter to the process Prometheus
// registry:
//
//	benchsweep_states_total{benchmark="copy"}      24
//	benchsweep_states_completed{benchmark="copy"}  10
package progress

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchsweep_states_total",
			Help: "Number of states a benchmark will run",
		},
		[]string{"benchmark"},
	)
	statesCompleted = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchsweep_states_completed",
			Help: "Number of states a benchmark has finished",
		},
		[]string{"benchmark"},
	)
)

// Counter tracks total and completed state counts.
type Counter struct {
	total     atomic.Int64
	completed atomic.Int64
}

// NewCounter returns a zeroed counter.
func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) SetTotal(n int64) { c.total.Store(n) }

func (c *Counter) Total() int64 { return c.total.Load() }

// AddCompleted advances the completed count by n and returns the new value.
func (c *Counter) AddCompleted(n int64) int64 { return c.completed.Add(n) }

func (c *Counter) SetCompleted(n int64) { c.completed.Store(n) }

func (c *Counter) Completed() int64 { return c.completed.Load() }

// Fraction returns completed/total clamped to [0, 1]. A counter without a
// total reports 0.
func (c *Counter) Fraction() float64 {
	total := c.Total()
	if total <= 0 {
		return 0
	}
	f := float64(c.Completed()) / float64(total)
	return min(max(f, 0), 1)
}

// Observe copies the current counts into the exported gauges under the
// given benchmark label.
func (c *Counter) Observe(benchmark string) {
	statesTotal.WithLabelValues(benchmark).Set(float64(c.Total()))
	statesCompleted.WithLabelValues(benchmark).Set(float64(c.Completed()))
}

// Forget drops the gauges exported for benchmark.
func Forget(benchmark string) {
	statesTotal.DeleteLabelValues(benchmark)
	statesCompleted.DeleteLabelValues(benchmark)
}
