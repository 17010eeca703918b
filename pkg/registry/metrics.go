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

package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registeredBenchmarks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchsweep_registry_benchmarks",
			Help: "Number of benchmark descriptors in the last observed registry",
		},
	)
	clonesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "benchsweep_registry_clones_total",
			Help: "Total number of benchmark descriptors cloned for execution",
		},
	)
	benchmarkConfigurations = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchsweep_registry_configurations",
			Help: "Configuration count of a registered benchmark when last observed",
		},
		[]string{"benchmark"},
	)
)
