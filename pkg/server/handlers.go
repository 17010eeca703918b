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

package server

import (
	"context"
	"net/http"

	"github.com/NVIDIA/benchsweep/pkg/report"
	"github.com/NVIDIA/benchsweep/pkg/serializer"
)

// handleListBenchmarks handles GET /v1/benchmarks
func (s *Server) handleListBenchmarks(w http.ResponseWriter, r *http.Request) {
	list, err := report.BuildList(s.registry)
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to list benchmarks", nil)
		return
	}
	list.Stamp(s.config.Version)
	serializer.RespondJSON(w, http.StatusOK, list)
}

// handleGetBenchmark handles GET /v1/benchmarks/{name}
func (s *Server) handleGetBenchmark(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	b, err := s.registry.Get(name)
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to find benchmark", nil)
		return
	}

	summary, err := report.Summarize(b)
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to summarize benchmark",
			map[string]any{"benchmark": name})
		return
	}
	serializer.RespondJSON(w, http.StatusOK, summary)
}

// handleGetAxes handles GET /v1/benchmarks/{name}/axes
func (s *Server) handleGetAxes(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	b, err := s.registry.Get(name)
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to find benchmark", nil)
		return
	}

	axes, err := report.BuildAxes(b)
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to list axes",
			map[string]any{"benchmark": name})
		return
	}
	axes.Stamp(s.config.Version)
	serializer.RespondJSON(w, http.StatusOK, axes)
}

// handlePlan handles GET /v1/plan?benchmark=<name>&select=<selection>...
//
// Selections apply to per-request clones; the served registry never changes.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := report.PlanOptions{
		Benchmark:  q.Get("benchmark"),
		Selections: q["select"],
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.PlanTimeout)
	defer cancel()

	plan, err := report.BuildPlan(ctx, s.registry, opts)
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to build plan", map[string]any{
			"benchmark": opts.Benchmark,
			"select":    opts.Selections,
		})
		return
	}
	plan.Stamp(s.config.Version)
	serializer.RespondJSON(w, http.StatusOK, plan)
}
