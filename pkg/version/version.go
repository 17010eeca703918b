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

// Package version parses and compares sweep file format versions.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrIncompatible      = errors.New("incompatible file version")
)

// Reader is the sweep file format version understood by this build.
var Reader = Version{Major: 1, Minor: 0, Precision: 2}

// Version is a dotted file format version with up to three components.
// Precision records how many components were present when parsed.
type Version struct {
	Major     int `json:"major" yaml:"major"`
	Minor     int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch     int `json:"patch,omitempty" yaml:"patch,omitempty"`
	Precision int `json:"-" yaml:"-"`
}

// String returns the version respecting its precision.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Parse parses "1", "1.2", "1.2.3" with an optional "v" prefix.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	var comps [3]int
	for i, part := range parts {
		// Atoi accepts a leading sign; file versions never carry one.
		if part == "" || part[0] == '+' || part[0] == '-' {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		comps[i] = n
	}

	return Version{
		Major:     comps[0],
		Minor:     comps[1],
		Patch:     comps[2],
		Precision: len(parts),
	}, nil
}

// Compare returns -1, 0 or 1 comparing all three components.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpInt(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpInt(v.Minor, other.Minor)
	default:
		return cmpInt(v.Patch, other.Patch)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CheckFile validates a file version against the reader version.
// A different major version is an error. A differing minor or patch returns
// warn=true: the file may still read correctly.
func CheckFile(fileVersion string) (v Version, warn bool, err error) {
	v, err = Parse(fileVersion)
	if err != nil {
		return Version{}, false, err
	}
	if v.Major != Reader.Major {
		return v, false, fmt.Errorf("%w: file version %s, reader version %s", ErrIncompatible, v, Reader)
	}
	return v, v.Compare(Reader) != 0, nil
}
