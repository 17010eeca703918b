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

package benchmark

import (
	"github.com/NVIDIA/benchsweep/pkg/device"
	"github.com/NVIDIA/benchsweep/pkg/values"
)

// State is one atomic run: a device and one value per axis. Values is owned
// by the state; Summaries collects whatever the run reports.
type State struct {
	Device     device.Info   `json:"device" yaml:"device"`
	Values     *values.Named `json:"values" yaml:"values"`
	Summaries  values.Named  `json:"summaries" yaml:"summaries"`
	SkipReason string        `json:"skipReason,omitempty" yaml:"skipReason,omitempty"`
}

// Skip marks the state as not to be run.
func (s *State) Skip(reason string) { s.SkipReason = reason }

func (s *State) IsSkipped() bool { return s.SkipReason != "" }
