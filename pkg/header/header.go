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

package header

import (
	"time"
)

// APIVersion is the schema version of every benchsweep document.
const APIVersion = "benchsweep.nvidia.com/v1"

// Kind represents the type of a benchsweep document.
type Kind string

// Valid Kind constants for all benchsweep document types.
const (
	KindBenchmarkList Kind = "BenchmarkList"
	KindAxisList      Kind = "AxisList"
	KindSweepPlan     Kind = "SweepPlan"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindBenchmarkList, KindAxisList, KindSweepPlan:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for benchsweep
// documents. It follows Kubernetes-style resource conventions with Kind,
// APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs such as the creation timestamp.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets the Kind and APIVersion and resets Metadata to the current
// timestamp.
func (h *Header) Init(kind Kind, apiVersion string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}

// GetKind returns the Kind field of the Header.
func (h *Header) GetKind() Kind {
	return h.Kind
}

// Stamp records the version of the tool that produced the document.
// An empty version is ignored.
func (h *Header) Stamp(version string) {
	if version == "" {
		return
	}
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata["version"] = version
}
