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

// Package defaults provides centralized configuration constants for benchsweep.
//
// Sampling thresholds are stored on every benchmark descriptor and consumed
// by the execution engine; this package only fixes their starting values.
//
// # Usage
//
//	b := benchmark.New("copy", kind) // thresholds start at these defaults
//	b.SetMinSamples(defaults.MinSamples * 2)
//
// # Threshold Guidelines
//
//   - MinSamples: 10 measurements before the noise criterion is consulted
//   - MinTime: 0.5s of accumulated measured time
//   - MaxNoise: 0.5% relative standard deviation
//   - SkipTime: negative disables the warm-up skip check
//   - Timeout: 15s wall clock before a configuration is abandoned
package defaults
