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

// Package registry owns the registered benchmark descriptors and hands out
// independent clones of them for execution.
//
// Registration is a single-writer setup phase. Once it is over, Clone gives
// the execution engine a snapshot that shares nothing with the registry:
//
//	reg := registry.New()
//	b := reg.Add(benchmark.New("copy", nil))
//	b.AddDevice(0)
//
//	for _, work := range reg.Clone() {
//		go run(work)
//	}
//
// Names are not required to be unique. Get returns the first match in
// registration order.
//
// Entry points that do not construct their own registry can use Default,
// which is created on first use and lives for the rest of the process.
//
// # Metrics
//
//   - benchsweep_registry_benchmarks: registered descriptors
//   - benchsweep_registry_clones_total: descriptors cloned out
//   - benchsweep_registry_configurations{benchmark}: configuration count at registration
package registry
