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
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/benchsweep/pkg/benchmark"
	"github.com/NVIDIA/benchsweep/pkg/header"
	"github.com/NVIDIA/benchsweep/pkg/registry"
	"github.com/NVIDIA/benchsweep/pkg/sweep"
	"github.com/NVIDIA/benchsweep/pkg/values"
)

// PlanConfig is one configuration of a plan.
type PlanConfig struct {
	Device int           `json:"device" yaml:"device"`
	Values *values.Named `json:"values" yaml:"values"`
}

// PlanEntry is the enumerated sweep of one benchmark clone.
type PlanEntry struct {
	Benchmark      string       `json:"benchmark" yaml:"benchmark"`
	RunID          string       `json:"runId" yaml:"runId"`
	Configurations []PlanConfig `json:"configurations" yaml:"configurations"`
}

// Plan is the report of the plan command.
type Plan struct {
	header.Header `json:",inline" yaml:",inline"`

	Plans []PlanEntry `json:"plans" yaml:"plans"`
}

func (r Plan) Columns() []string {
	return []string{"BENCHMARK", "#", "DEVICE", "VALUES"}
}

func (r Plan) Rows() [][]string {
	var rows [][]string
	for _, p := range r.Plans {
		for i, c := range p.Configurations {
			rows = append(rows, []string{
				p.Benchmark,
				strconv.Itoa(i),
				strconv.Itoa(c.Device),
				RenderValues(c.Values),
			})
		}
	}
	return rows
}

// RenderValues renders a store as "name=value" pairs in order.
func RenderValues(n *values.Named) string {
	entries := n.Entries()
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Name + "=" + e.Value.String()
	}
	return strings.Join(parts, " ")
}

// PlanOptions narrows a plan.
type PlanOptions struct {
	// Benchmark restricts the plan to benchmarks with this name.
	Benchmark string
	// Selections are parsed with sweep.ParseSelection and applied in order.
	Selections []string
}

// BuildPlan clones the registry, narrows the clones and enumerates each of
// them concurrently. Plans come back in registration order.
func BuildPlan(ctx context.Context, reg *registry.Registry, opts PlanOptions) (Plan, error) {
	if dups := reg.Duplicates(); len(dups) > 0 {
		slog.Warn("sweep declares duplicate benchmark names", "names", dups)
	}

	clones := reg.Clone()
	if opts.Benchmark != "" {
		if _, err := reg.Get(opts.Benchmark); err != nil {
			return Plan{}, err
		}
		kept := clones[:0]
		for _, c := range clones {
			if c.Name() == opts.Benchmark {
				kept = append(kept, c)
			}
		}
		clones = kept
	}

	for _, s := range opts.Selections {
		sel, err := sweep.ParseSelection(s)
		if err != nil {
			return Plan{}, err
		}
		if err := sweep.Apply(clones, sel); err != nil {
			return Plan{}, err
		}
	}

	plans := make([]PlanEntry, len(clones))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range clones {
		g.Go(func() error {
			p, err := enumerate(gctx, b)
			if err != nil {
				return err
			}
			plans[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Plan{}, err
	}
	r := Plan{Plans: plans}
	r.Init(header.KindSweepPlan, header.APIVersion)
	return r, nil
}

func enumerate(ctx context.Context, b *benchmark.Benchmark) (PlanEntry, error) {
	states, err := b.States(ctx)
	if err != nil {
		return PlanEntry{}, fmt.Errorf("benchmark %q: %w", b.Name(), err)
	}

	p := PlanEntry{
		Benchmark:      b.Name(),
		RunID:          b.RunID().String(),
		Configurations: make([]PlanConfig, 0, len(states)),
	}
	for _, s := range states {
		p.Configurations = append(p.Configurations, PlanConfig{Device: s.Device.ID(), Values: s.Values})
	}
	b.Progress().Observe(b.Name())

	slog.Debug("enumerated benchmark",
		"benchmark", b.Name(),
		"run_id", p.RunID,
		"configurations", len(p.Configurations))
	return p, nil
}
