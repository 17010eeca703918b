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

// Package benchmark defines the benchmark descriptor: a named sweep space,
// the devices it targets, its sampling thresholds and the transient state an
// execution engine accumulates while driving it.
//
// # Lifecycle
//
// A descriptor is built once, registered, and from then on only cloned.
// Clones are the working copies handed to execution:
//
//	b := benchmark.New("copy", benchmark.MustLookupKind("noop"))
//	if _, err := b.AddInt64Axis("Elements", []int64{20, 24, 28}, axis.FlagPowerOfTwo); err != nil {
//		return err
//	}
//	b.AddTypeAxis("T", []string{"f", "d"})
//	b.SetDevices([]int{0, 1})
//
//	work := b.Clone() // fresh progress, results and run id
//
// # Kinds
//
// Every descriptor carries a Kind. Clone asks the kind for a blank instance
// of itself, so kind-specific state is never shared between clones. Kinds
// are registered globally by name:
//
//	benchmark.MustRegisterKind(benchmark.NewFuncKind("copy", runCopy))
//
// # Configuration versus state
//
// Name, kind, axes, devices and thresholds make up the configuration and are
// what ConfigEqual compares. The progress counter, recorded results and run
// id are state: they are never copied and never compared.
package benchmark
