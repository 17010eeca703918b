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
	"math/bits"
	"slices"
	"strings"

	"github.com/NVIDIA/benchsweep/pkg/errors"
)

// Collection is the ordered set of axes of one benchmark.
// The zero value is an empty collection.
type Collection struct {
	axes []Axis
}

// Add appends a. Names are expected to be unique but this is not enforced;
// name lookups return the first match.
func (c *Collection) Add(a Axis) {
	c.axes = append(c.axes, a)
}

// AddInt64Axis creates, fills and appends a numeric axis. Nothing is added
// when the inputs are rejected.
func (c *Collection) AddInt64Axis(name string, inputs []int64, flags Flags) (*Int64Axis, error) {
	a := NewInt64Axis(name)
	if err := a.SetInputs(inputs, flags); err != nil {
		return nil, err
	}
	c.Add(a)
	return a, nil
}

// AddStringAxis creates, fills and appends a string axis.
func (c *Collection) AddStringAxis(name string, inputs []string) *StringAxis {
	a := NewStringAxis(name)
	a.SetInputs(inputs)
	c.Add(a)
	return a
}

// AddTypeAxis creates and appends a type axis with the whole catalog active.
// Narrow the selection afterwards with SetActiveInputs.
func (c *Collection) AddTypeAxis(name string, catalog []string) *TypeAxis {
	a := NewTypeAxis(name, catalog)
	a.SetAllActive()
	c.Add(a)
	return a
}

// Len returns the number of axes.
func (c *Collection) Len() int { return len(c.axes) }

// Axes returns the axes in order. The slice is a copy; the axes are shared.
func (c *Collection) Axes() []Axis { return slices.Clone(c.axes) }

// Names returns axis names in order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.axes))
	for i, a := range c.axes {
		names[i] = a.Name()
	}
	return names
}

// At returns the axis at position i.
func (c *Collection) At(i int) (Axis, error) {
	if i < 0 || i >= len(c.axes) {
		return nil, errors.NewWithContext(errors.ErrCodeIndexOutOfRange,
			fmt.Sprintf("axis index %d out of range [0, %d)", i, len(c.axes)),
			map[string]any{"index": i, "size": len(c.axes)})
	}
	return c.axes[i], nil
}

// Get returns the first axis named name.
func (c *Collection) Get(name string) (Axis, error) {
	for _, a := range c.axes {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("no axis named '%s'; axes: [%s]", name, strings.Join(c.Names(), ", ")),
		map[string]any{"name": name, "valid": c.Names()})
}

// Has reports whether an axis named name exists.
func (c *Collection) Has(name string) bool {
	return slices.ContainsFunc(c.axes, func(a Axis) bool { return a.Name() == name })
}

// Int64Axis returns the first axis named name as a numeric axis.
func (c *Collection) Int64Axis(name string) (*Int64Axis, error) {
	return getAs[*Int64Axis](c, name, KindInt64)
}

// StringAxis returns the first axis named name as a string axis.
func (c *Collection) StringAxis(name string) (*StringAxis, error) {
	return getAs[*StringAxis](c, name, KindString)
}

// TypeAxis returns the first axis named name as a type axis.
func (c *Collection) TypeAxis(name string) (*TypeAxis, error) {
	return getAs[*TypeAxis](c, name, KindType)
}

func getAs[T Axis](c *Collection, name string, want Kind) (T, error) {
	var zero T
	a, err := c.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := a.(T)
	if !ok {
		return zero, errors.NewWithContext(errors.ErrCodeTypeMismatch,
			fmt.Sprintf("axis '%s' is a %s axis, requested %s", name, a.Kind(), want),
			map[string]any{"name": name, "requested": want.String(), "actual": a.Kind().String()})
	}
	return typed, nil
}

// Clone returns a deep copy; later changes to either side do not affect the other.
func (c *Collection) Clone() Collection {
	out := Collection{axes: make([]Axis, len(c.axes))}
	for i, a := range c.axes {
		out.axes[i] = a.clone()
	}
	return out
}

// ConfigCount returns the product of every axis' EffectiveSize. An empty
// collection has exactly one (empty) configuration. A product that does not
// fit in uint64 fails with errors.ErrCodeOutOfRange.
func (c *Collection) ConfigCount() (uint64, error) {
	return MulCount(1, c.axes...)
}

// MulCount multiplies start by the effective size of each axis, failing on
// uint64 overflow.
func MulCount(start uint64, axes ...Axis) (uint64, error) {
	total := start
	for _, a := range axes {
		hi, lo := bits.Mul64(total, uint64(EffectiveSize(a)))
		if hi != 0 {
			return 0, errors.NewWithContext(errors.ErrCodeOutOfRange,
				fmt.Sprintf("configuration count overflows uint64 at axis '%s'", a.Name()),
				map[string]any{"axis": a.Name()})
		}
		total = lo
	}
	return total, nil
}

// Equal reports whether c and other hold the same axes in the same order,
// including inputs, flags and type-axis selections.
func (c *Collection) Equal(other *Collection) bool {
	return slices.EqualFunc(c.axes, other.axes, axisEqual)
}

func axisEqual(a, b Axis) bool {
	if a.Name() != b.Name() || a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case *Int64Axis:
		b := b.(*Int64Axis)
		return a.flags == b.flags && slices.Equal(a.inputs, b.inputs)
	case *StringAxis:
		return slices.Equal(a.inputs, b.(*StringAxis).inputs)
	case *TypeAxis:
		b := b.(*TypeAxis)
		return slices.Equal(a.catalog, b.catalog) && slices.Equal(a.mask, b.mask)
	default:
		return false
	}
}
