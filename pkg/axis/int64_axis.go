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
	"slices"
	"strconv"

	"github.com/NVIDIA/benchsweep/pkg/errors"
)

// Flags modify how an Int64Axis interprets its inputs.
type Flags uint8

const (
	FlagNone Flags = 0

	// FlagPowerOfTwo makes each input v select the value 2^v.
	FlagPowerOfTwo Flags = 1 << 0
)

// MaxPow2Exponent is the largest input accepted in power-of-two mode.
const MaxPow2Exponent = 63

// Int64Axis is a numeric axis.
type Int64Axis struct {
	base
	inputs []int64
	values []int64
	flags  Flags
}

// NewInt64Axis returns an empty linear axis.
func NewInt64Axis(name string) *Int64Axis {
	return &Int64Axis{base: base{name: name}}
}

// SetInputs replaces the inputs. In power-of-two mode every input must lie
// in [0, 63]; on failure the axis keeps its previous inputs and flags.
func (a *Int64Axis) SetInputs(inputs []int64, flags Flags) error {
	vals := slices.Clone(inputs)
	if flags&FlagPowerOfTwo != 0 {
		for i, in := range inputs {
			if in < 0 || in > MaxPow2Exponent {
				return errors.NewWithContext(errors.ErrCodeOutOfRange,
					fmt.Sprintf("input value exceeds valid range for power-of-two mode. Input=%d ValidRange=[0, %d]",
						in, MaxPow2Exponent),
					map[string]any{
						"axis":        a.name,
						"input":       in,
						"valid_range": fmt.Sprintf("[0, %d]", MaxPow2Exponent),
					})
			}
			vals[i] = int64(pow2(in))
		}
	}

	a.inputs = slices.Clone(inputs)
	a.values = vals
	a.flags = flags
	return nil
}

func pow2(exp int64) uint64 {
	return uint64(1) << uint(exp)
}

// Kind implements Axis.
func (a *Int64Axis) Kind() Kind { return KindInt64 }

// Size implements Axis.
func (a *Int64Axis) Size() int { return len(a.inputs) }

// Flags returns the flags set by the last successful SetInputs.
func (a *Int64Axis) Flags() Flags { return a.flags }

// IsPowerOfTwo reports whether inputs are exponents.
func (a *Int64Axis) IsPowerOfTwo() bool { return a.flags&FlagPowerOfTwo != 0 }

// Inputs returns a copy of the raw inputs.
func (a *Int64Axis) Inputs() []int64 { return slices.Clone(a.inputs) }

// Values returns a copy of the effective values. For the input 63 in
// power-of-two mode the entry holds the bit pattern of 2^63; use Pow2Value
// for the exact unsigned value.
func (a *Int64Axis) Values() []int64 { return slices.Clone(a.values) }

// Value returns effective value i.
func (a *Int64Axis) Value(i int) int64 { return a.values[i] }

// Pow2Value returns 2^input(i) exactly. It is only meaningful in
// power-of-two mode.
func (a *Int64Axis) Pow2Value(i int) uint64 { return pow2(a.inputs[i]) }

// InputString implements Axis.
func (a *Int64Axis) InputString(i int) string {
	return strconv.FormatInt(a.inputs[i], 10)
}

// Description implements Axis. Power-of-two axes render "2^v = value".
func (a *Int64Axis) Description(i int) string {
	if !a.IsPowerOfTwo() {
		return ""
	}
	return fmt.Sprintf("2^%d = %d", a.inputs[i], a.Pow2Value(i))
}

// FlagsString implements Axis.
func (a *Int64Axis) FlagsString() string {
	if a.IsPowerOfTwo() {
		return "pow2"
	}
	return ""
}

func (a *Int64Axis) clone() Axis {
	return &Int64Axis{
		base:   a.base,
		inputs: slices.Clone(a.inputs),
		values: slices.Clone(a.values),
		flags:  a.flags,
	}
}
