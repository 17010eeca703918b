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

package axis

import (
	"fmt"
	"strconv"
)

// Kind identifies an axis variant.
type Kind int

const (
	KindInt64 Kind = iota
	KindString
	KindType
)

// String returns the kind name used in output.
func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindString:
		return "string"
	case KindType:
		return "type"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Axis is one dimension of a sweep. Implemented only by *Int64Axis,
// *StringAxis and *TypeAxis.
type Axis interface {
	Name() string
	Kind() Kind
	// Size is the number of inputs; the catalog size for a type axis.
	Size() int
	// InputString renders input i. It panics if i is out of range, like a
	// slice index.
	InputString(i int) string
	// Description is an optional longer rendering of input i.
	Description(i int) string
	// FlagsString is a short annotation such as "pow2", or empty.
	FlagsString() string

	clone() Axis
}

// EffectiveSize is the number of values a contributes to the sweep: the
// active count for a type axis, the input count otherwise.
func EffectiveSize(a Axis) int {
	switch a := a.(type) {
	case *TypeAxis:
		return a.ActiveCount()
	case *Int64Axis:
		return a.Size()
	case *StringAxis:
		return a.Size()
	default:
		panic(fmt.Sprintf("axis: unexpected axis type %T", a))
	}
}

type base struct {
	name string
}

func (b base) Name() string { return b.name }
