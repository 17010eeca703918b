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

// Package typename recovers human-readable names from compiler-mangled type
// identifiers. It is a display aid only: enumeration and equality always use
// the identity strings as given.
package typename

import (
	"strings"

	"github.com/ianlancetaylor/demangle"
)

// Demangle returns the demangled form of an Itanium C++ or Rust symbol, or
// s unchanged when it is not mangled or cannot be demangled.
func Demangle(s string) string {
	if s == "" {
		return s
	}
	// typeid(T).name() yields bare type encodings ("i", "N4cuda3stdE")
	// rather than full symbols; demangle those as types.
	if !strings.HasPrefix(s, "_Z") && !strings.HasPrefix(s, "_R") {
		if out, err := demangle.ToString("_Z" + typePrefix + s); err == nil {
			return strings.TrimPrefix(out, "typeinfo for ")
		}
		return s
	}
	return demangle.Filter(s, demangle.NoClones)
}

// typePrefix turns a bare type encoding into a typeinfo symbol that the
// demangler accepts as a complete mangled name.
const typePrefix = "TI"

// Describe returns the demangled form of s when it differs from s, and an
// empty string otherwise.
func Describe(s string) string {
	if d := Demangle(s); d != s {
		return d
	}
	return ""
}
