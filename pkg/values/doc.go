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

// Package values provides the typed scalar and the ordered name/value store
// that carry axis values and recorded benchmark state.
//
// # Core Types
//
//   - Value: closed variant over int64, float64 and string
//   - Kind: tag identifying which of the three a Value holds
//   - Named: ordered, duplicate-tolerant sequence of (name, Value) entries
//
// # Creating Values
//
//	v := values.Int64(1 << 20)
//	s := values.String("float")
//
// # Named Stores
//
// Entries are appended, never overwritten. Lookups return the first entry
// with the requested name, so re-declaring a name shadows nothing until the
// earlier entry is removed:
//
//	var n values.Named
//	n.SetInt64("a", 1)
//	n.SetString("b", "x")
//	n.SetInt64("a", 2)
//
//	a, _ := n.GetInt64("a") // 1
//	n.Remove("a")
//	a, _ = n.GetInt64("a")  // 2
//
// Reading an entry through the wrong accessor fails with
// errors.ErrCodeTypeMismatch; a missing name fails with errors.ErrCodeNotFound.
//
// # Serialization
//
// A Value marshals to its bare scalar. A Named store marshals to an ordered
// list of {name, type, value} objects so presentation order survives JSON
// and YAML output.
package values
