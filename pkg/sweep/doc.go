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

// Package sweep loads benchmark descriptors from YAML sweep files and
// applies command-line axis selections to them.
//
// # File Format
//
//	version: "1.0"
//	benchmarks:
//	  - name: copy
//	    kind: noop
//	    devices: [0, 1]
//	    thresholds:
//	      min_samples: 20
//	      min_time: 1.0     # seconds
//	      max_noise: 0.01   # relative, 0.01 == 1%
//	      skip_time: -1     # seconds, negative disables
//	      timeout: 30       # seconds
//	    axes:
//	      - name: Elements
//	        type: int64
//	        pow2: true
//	        values: [20, 24, 28]
//	      - name: Mode
//	        type: string
//	        values: [fast, safe]
//	      - name: T
//	        type: type
//	        catalog: [i, f, d]
//	        active: [f, d]   # omitted: every entry is active
//
// Omitted thresholds keep the benchmark defaults. Omitted devices default to
// device 0. A file whose major version differs from Reader is rejected; a
// minor difference is logged and loaded.
//
// # Selections
//
// A selection narrows a type axis to some of its catalog entries:
//
//	copy:T=f,d    only benchmark "copy"
//	T=f           every benchmark with a type axis named T
package sweep
