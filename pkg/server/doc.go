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

// Package server serves a loaded benchmark sweep over a read-only HTTP API.
//
// The server exposes the same list, axes and plan views as the command line.
// It never mutates the registry it serves: plan selections are applied to
// per-request clones.
//
// # Architecture
//
//   - Routing with net/http.ServeMux method and wildcard patterns
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Prometheus RED metrics labelled by route pattern
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
//	reg := registry.New()
//	if _, err := sweep.Load("sweep.yaml", reg); err != nil {
//	    return err
//	}
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200 // 200 requests/sec
//
//	return server.Run(ctx, server.WithConfig(cfg), server.WithRegistry(reg))
//
// # API Endpoints
//
// GET /v1/benchmarks - Summaries of every benchmark, including configuration counts
//
// GET /v1/benchmarks/{name} - Summary of the first benchmark named name
//
// GET /v1/benchmarks/{name}/axes - Every input of every axis of one benchmark
//
// GET /v1/plan - Enumerated configurations
//
//	Query parameters:
//	  - benchmark: only plan benchmarks with this name
//	  - select: [benchmark:]axis=input[,input...] (repeatable)
//
//	Example:
//	  curl "http://localhost:8080/v1/plan?benchmark=copy&select=T=f,d"
//
// GET /health - Health check (for liveness probe)
//
// GET /ready - Readiness check, 503 while starting or shutting down
//
// GET /metrics - Prometheus metrics
//
// # Error Handling
//
// All API errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "invalid input string 'half' for type axis 'T'; valid input strings: [i, f, d]",
//	  "details": {"axis": "T", "input": "half", "valid": ["i", "f", "d"]},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes:
//   - NOT_FOUND: unknown benchmark, axis or type (404)
//   - INVALID_REQUEST, OUT_OF_RANGE, TYPE_MISMATCH: bad selection (400)
//   - RATE_LIMIT_EXCEEDED: too many requests (429)
//   - INTERNAL: server error or plan timeout (500)
package server
