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

package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/benchsweep/pkg/errors"
)

type celsius float64

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindInt64, "int64"},
		{KindFloat64, "float64"},
		{KindString, "string"},
		{Kind(42), "unknown(42)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.k.String())
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name    string
		v       Value
		want    Kind
		wantErr bool
	}{
		{"int64", Int64(7), KindInt64, false},
		{"float64", Float64(0.5), KindFloat64, false},
		{"string", String("x"), KindString, false},
		{"nil", nil, 0, true},
		{"named scalar type", Scalar[celsius]{V: 3}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindOf(tt.v)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownVariant))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNarrowing(t *testing.T) {
	i, err := AsInt64(Int64(-3))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), i)

	f, err := AsFloat64(Float64(2.5))
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	s, err := AsString(String("pow2"))
	require.NoError(t, err)
	assert.Equal(t, "pow2", s)

	_, err = AsInt64(String("x"))
	require.Error(t, err)
	var se *errors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeTypeMismatch, se.Code)
	assert.Equal(t, "int64", se.Context["requested"])
	assert.Equal(t, "string", se.Context["actual"])

	_, err = AsFloat64(Int64(1))
	assert.True(t, errors.IsCode(err, errors.ErrCodeTypeMismatch))

	_, err = AsString(Float64(1))
	assert.True(t, errors.IsCode(err, errors.ErrCodeTypeMismatch))
}

func TestScalar_JSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int64", Int64(9223372036854775807), "9223372036854775807"},
		{"float64", Float64(3.25), "3.25"},
		{"string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestScalar_YAML(t *testing.T) {
	data, err := yaml.Marshal(map[string]Value{"size": Int64(16)})
	require.NoError(t, err)
	assert.Equal(t, "size: 16\n", string(data))
}

func TestScalar_String(t *testing.T) {
	assert.Equal(t, "16", Int64(16).String())
	assert.Equal(t, "0.5", Float64(0.5).String())
	assert.Equal(t, "abc", String("abc").String())
}
