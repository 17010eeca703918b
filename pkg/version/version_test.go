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

package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr error
	}{
		{"1", Version{Major: 1, Precision: 1}, nil},
		{"1.0", Version{Major: 1, Minor: 0, Precision: 2}, nil},
		{"v1.2", Version{Major: 1, Minor: 2, Precision: 2}, nil},
		{"1.2.3", Version{Major: 1, Minor: 2, Patch: 3, Precision: 3}, nil},
		{"", Version{}, ErrEmptyVersion},
		{"1.2.3.4", Version{}, ErrTooManyComponents},
		{"1.x", Version{}, ErrNonNumeric},
		{"1.", Version{}, ErrNonNumeric},
		{"-1", Version{}, ErrNonNumeric},
		{"+1", Version{}, ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{Major: 1, Precision: 1}, "1"},
		{Version{Major: 1, Minor: 2, Precision: 2}, "1.2"},
		{Version{Major: 1, Minor: 2, Patch: 3, Precision: 3}, "1.2.3"},
		{Version{Major: 1}, "1.0.0"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1", "1.0.0", 0},
		{"1.1", "1.0", 1},
		{"1.0", "2.0", -1},
		{"1.0.1", "1.0.2", -1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a, _ := Parse(tt.a)
			b, _ := Parse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCheckFile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantWarn bool
		wantErr  error
	}{
		{"same version", Reader.String(), false, nil},
		{"newer minor", "1.7", true, nil},
		{"patch differs", "1.0.3", true, nil},
		{"different major", "2.0", false, ErrIncompatible},
		{"garbage", "one", false, ErrNonNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, warn, err := CheckFile(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CheckFile(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckFile(%q) unexpected error: %v", tt.input, err)
			}
			if warn != tt.wantWarn {
				t.Errorf("CheckFile(%q) warn = %v, want %v", tt.input, warn, tt.wantWarn)
			}
		})
	}
}
