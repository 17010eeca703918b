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

// Package cli implements the benchsweep command-line tool, which inspects
// sweep files without running anything.
//
// # Commands
//
// list - Registered benchmarks and the size of their sweeps:
//
//	benchsweep list --file sweep.yaml [--format table|json|yaml] [--output FILE]
//
// plan - Every configuration each benchmark would run:
//
//	benchsweep plan --file sweep.yaml [--benchmark NAME] [--select [BENCH:]AXIS=A,B]
//
// The registry is cloned before selections are applied, so the loaded
// descriptors stay as the file declares them. Clones are enumerated
// concurrently.
//
// axes - Per-axis inputs of one benchmark, with demangled type names:
//
//	benchsweep axes --file sweep.yaml --benchmark NAME
//
// # Global Flags
//
//	--log-level    debug, info, warn or error (env LOG_LEVEL, default info)
//
// Logs go to stderr as JSON; command output goes to stdout unless --output
// names a file.
package cli
