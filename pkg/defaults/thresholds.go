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

// Sampling thresholds applied to newly constructed benchmarks.
const (
	// MinSamples is the minimum number of samples collected per configuration.
	MinSamples int64 = 10

	// MinTime is the minimum accumulated measured time per configuration.
	MinTime = 500 * time.Millisecond

	// MaxNoise is the maximum tolerated relative standard deviation (0.005 == 0.5%).
	MaxNoise = 0.005

	// SkipTime is the warm-up skip threshold. Negative values disable it.
	SkipTime = -1 * time.Second

	// Timeout is the overall wall clock limit for a single configuration.
	Timeout = 15 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIPlanTimeout bounds enumeration of a full sweep by the plan command.
	CLIPlanTimeout = 2 * time.Minute
)
