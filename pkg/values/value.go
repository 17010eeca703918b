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
	"fmt"
	"strconv"

	"github.com/NVIDIA/benchsweep/pkg/errors"
)

// Kind identifies which scalar a Value holds.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindString
)

// String returns the lower-case kind name used in messages and output.
func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// AllowedScalar is the compile-time constraint for Value payloads.
type AllowedScalar interface {
	~int64 | ~float64 | ~string
}

// Value is a closed runtime variant. Only Scalar implements it.
type Value interface {
	isValue()
	Any() any
	String() string

	json.Marshaler
}

// Scalar wraps one allowed scalar type.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isValue() {}

// Any returns the payload as an interface value.
func (s Scalar[T]) Any() any { return s.V }

// String returns the payload formatted for display.
func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}

// MarshalJSON emits the payload itself, not a wrapper object.
func (s Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML emits the payload itself, not a wrapper object.
func (s Scalar[T]) MarshalYAML() (any, error) {
	return s.V, nil
}

// Int64 returns an int64 Value.
func Int64(v int64) Value { return Scalar[int64]{V: v} }

// Float64 returns a float64 Value.
func Float64(v float64) Value { return Scalar[float64]{V: v} }

// String returns a string Value.
func String(v string) Value { return Scalar[string]{V: v} }

// KindOf reports the kind held by v. The default branch is reachable only
// for a nil Value or a Scalar instantiated over a named type; every
// constructor in this package yields one of the three kinds.
func KindOf(v Value) (Kind, error) {
	switch v.(type) {
	case Scalar[int64]:
		return KindInt64, nil
	case Scalar[float64]:
		return KindFloat64, nil
	case Scalar[string]:
		return KindString, nil
	default:
		return 0, errors.NewWithContext(errors.ErrCodeUnknownVariant,
			fmt.Sprintf("unknown variant type %T", v),
			map[string]any{"type": fmt.Sprintf("%T", v)})
	}
}

// AsInt64 narrows v to int64.
func AsInt64(v Value) (int64, error) {
	s, ok := v.(Scalar[int64])
	if !ok {
		return 0, mismatch(KindInt64, v)
	}
	return s.V, nil
}

// AsFloat64 narrows v to float64.
func AsFloat64(v Value) (float64, error) {
	s, ok := v.(Scalar[float64])
	if !ok {
		return 0, mismatch(KindFloat64, v)
	}
	return s.V, nil
}

// AsString narrows v to string.
func AsString(v Value) (string, error) {
	s, ok := v.(Scalar[string])
	if !ok {
		return "", mismatch(KindString, v)
	}
	return s.V, nil
}

func mismatch(want Kind, v Value) error {
	got, err := KindOf(v)
	if err != nil {
		return err
	}
	return errors.NewWithContext(errors.ErrCodeTypeMismatch,
		fmt.Sprintf("value holds %s, requested %s", got, want),
		map[string]any{
			"requested": want.String(),
			"actual":    got.String(),
		})
}
