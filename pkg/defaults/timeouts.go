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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// PlanHandlerTimeout bounds enumeration of a plan requested over HTTP.
	// Should be less than ServerWriteTimeout so the error can still be written.
	PlanHandlerTimeout = 25 * time.Second
)

// Server timeouts for the HTTP API.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slowloris attacks by limiting header read time.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration before timing out writes of the response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum time to wait for the next request on keep-alive connections.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum time to wait for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits for the HTTP API.
const (
	// ServerPort is the listen port used when PORT is not set.
	ServerPort = 8080

	// ServerRateLimit is the sustained request rate in requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket burst size.
	ServerRateLimitBurst = 200
)
