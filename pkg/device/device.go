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

// Package device carries the identity of a target device. The harness does
// not interpret devices beyond their integer id.
package device

import "strconv"

// Info is an opaque device handle.
type Info struct {
	id int
}

// New wraps a raw device id.
func New(id int) Info {
	return Info{id: id}
}

// FromIDs wraps every id in order. Duplicates are kept.
func FromIDs(ids []int) []Info {
	out := make([]Info, len(ids))
	for i, id := range ids {
		out[i] = New(id)
	}
	return out
}

// ID returns the raw device id.
func (d Info) ID() int { return d.id }

func (d Info) String() string {
	return "device " + strconv.Itoa(d.id)
}

// MarshalText renders the raw id so devices serialize as plain numbers in
// YAML and as quoted ids in JSON map keys.
func (d Info) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(d.id), 10), nil
}
