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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/benchsweep/pkg/errors"
)

func TestInt64Axis_Linear(t *testing.T) {
	a := NewInt64Axis("N")
	require.NoError(t, a.SetInputs([]int64{-5, 0, 7}, FlagNone))

	assert.Equal(t, KindInt64, a.Kind())
	assert.Equal(t, "N", a.Name())
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, []int64{-5, 0, 7}, a.Values())
	assert.Equal(t, "-5", a.InputString(0))
	assert.Empty(t, a.Description(0))
	assert.Empty(t, a.FlagsString())
	assert.False(t, a.IsPowerOfTwo())
}

func TestInt64Axis_PowerOfTwoAllExponents(t *testing.T) {
	inputs := make([]int64, 64)
	for i := range inputs {
		inputs[i] = int64(i)
	}

	a := NewInt64Axis("Elements")
	require.NoError(t, a.SetInputs(inputs, FlagPowerOfTwo))
	assert.Equal(t, "pow2", a.FlagsString())

	for i := range inputs {
		want := uint64(1) << uint(i)
		assert.Equal(t, want, a.Pow2Value(i), "exponent %d", i)
		assert.Equal(t, want, uint64(a.Value(i)), "exponent %d", i)
		assert.Equal(t, strconv.Itoa(i), a.InputString(i))
		assert.Equal(t, fmt.Sprintf("2^%d = %d", i, want), a.Description(i))
	}
	assert.Equal(t, "2^63 = 9223372036854775808", a.Description(63))
	assert.Equal(t, int64(1024), a.Value(10))
}

func TestInt64Axis_PowerOfTwoRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input int64
	}{
		{"negative", -1},
		{"sixty four", 64},
		{"huge", 1 << 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewInt64Axis("Elements")
			require.NoError(t, a.SetInputs([]int64{1, 2}, FlagNone))

			err := a.SetInputs([]int64{3, tt.input, 4}, FlagPowerOfTwo)
			require.Error(t, err)

			var se *errors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, errors.ErrCodeOutOfRange, se.Code)
			assert.Equal(t, tt.input, se.Context["input"])
			assert.Equal(t, "[0, 63]", se.Context["valid_range"])
			assert.Contains(t, err.Error(), fmt.Sprintf("Input=%d", tt.input))

			// prior state intact
			assert.Equal(t, []int64{1, 2}, a.Inputs())
			assert.Equal(t, []int64{1, 2}, a.Values())
			assert.False(t, a.IsPowerOfTwo())
		})
	}
}

func TestInt64Axis_InputsAreCopied(t *testing.T) {
	in := []int64{1, 2}
	a := NewInt64Axis("N")
	require.NoError(t, a.SetInputs(in, FlagNone))
	in[0] = 99
	assert.Equal(t, int64(1), a.Value(0))

	out := a.Values()
	out[1] = 99
	assert.Equal(t, int64(2), a.Value(1))
}
