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
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NVIDIA/benchsweep/pkg/serializer"
)

// builtinRoutes are listed by the root handler ahead of any custom handlers.
var builtinRoutes = []string{
	"GET /v1/benchmarks",
	"GET /v1/benchmarks/{name}",
	"GET /v1/benchmarks/{name}/axes",
	"GET /v1/plan",
	"GET /health",
	"GET /ready",
	"GET /metrics",
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleDefault)

	// System endpoints (no rate limiting)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	// API endpoints with middleware
	mux.HandleFunc("GET /v1/benchmarks", s.withMiddleware(s.handleListBenchmarks))
	mux.HandleFunc("GET /v1/benchmarks/{name}", s.withMiddleware(s.handleGetBenchmark))
	mux.HandleFunc("GET /v1/benchmarks/{name}/axes", s.withMiddleware(s.handleGetAxes))
	mux.HandleFunc("GET /v1/plan", s.withMiddleware(s.handlePlan))

	for _, pattern := range slices.Sorted(maps.Keys(s.config.Handlers)) {
		mux.HandleFunc(pattern, s.withMiddleware(s.config.Handlers[pattern]))
	}

	return mux
}

func (s *Server) routes() []string {
	return append(slices.Clone(builtinRoutes), slices.Sorted(maps.Keys(s.config.Handlers))...)
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name       string   `json:"name"`
		Version    string   `json:"version"`
		Ready      bool     `json:"ready"`
		Benchmarks int      `json:"benchmarks"`
		Timestamp  string   `json:"timestamp"`
		Routes     []string `json:"routes"`
	}{
		Name:       s.config.Name,
		Version:    s.config.Version,
		Ready:      s.isReady(),
		Benchmarks: s.registry.Count(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Routes:     s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
