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
	"strings"

	"github.com/NVIDIA/benchsweep/pkg/errors"
	"github.com/NVIDIA/benchsweep/pkg/typename"
)

// TypeAxis selects among a fixed catalog of type identities. The catalog
// never changes after construction; the mask decides which entries take
// part in a sweep.
type TypeAxis struct {
	base
	catalog []string
	mask    []bool
}

// NewTypeAxis returns a type axis over catalog with every entry inactive.
func NewTypeAxis(name string, catalog []string) *TypeAxis {
	return &TypeAxis{
		base:    base{name: name},
		catalog: slices.Clone(catalog),
		mask:    make([]bool, len(catalog)),
	}
}

func (a *TypeAxis) Kind() Kind { return KindType }

// Size implements Axis and returns the catalog size, not the active count.
func (a *TypeAxis) Size() int { return len(a.catalog) }

// Catalog returns a copy of the catalog.
func (a *TypeAxis) Catalog() []string { return slices.Clone(a.catalog) }

// InputString implements Axis.
func (a *TypeAxis) InputString(i int) string { return a.catalog[i] }

// Description implements Axis with the demangled identity, when it differs.
func (a *TypeAxis) Description(i int) string {
	return typename.Describe(a.catalog[i])
}

func (a *TypeAxis) FlagsString() string { return "" }

// TypeIndex resolves name to its catalog position by exact match.
func (a *TypeAxis) TypeIndex(name string) (int, error) {
	if i := slices.Index(a.catalog, name); i >= 0 {
		return i, nil
	}
	return -1, errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("invalid input string '%s' for type axis '%s'; valid input strings: [%s]",
			name, a.name, strings.Join(a.catalog, ", ")),
		map[string]any{
			"axis":  a.name,
			"input": name,
			"valid": a.Catalog(),
		})
}

// SetActiveInputs replaces the mask so that exactly names are active.
// Every name is resolved before the mask changes; an unknown name leaves
// the previous selection intact.
func (a *TypeAxis) SetActiveInputs(names []string) error {
	mask := make([]bool, len(a.catalog))
	for _, name := range names {
		i, err := a.TypeIndex(name)
		if err != nil {
			return err
		}
		mask[i] = true
	}
	a.mask = mask
	return nil
}

// SetAllActive activates the whole catalog.
func (a *TypeAxis) SetAllActive() {
	for i := range a.mask {
		a.mask[i] = true
	}
}

// IsActive reports whether the catalog entry name is active.
func (a *TypeAxis) IsActive(name string) (bool, error) {
	i, err := a.TypeIndex(name)
	if err != nil {
		return false, err
	}
	return a.mask[i], nil
}

// IsActiveIndex reports whether catalog position i is active.
func (a *TypeAxis) IsActiveIndex(i int) (bool, error) {
	if i < 0 || i >= len(a.mask) {
		return false, errors.NewWithContext(errors.ErrCodeIndexOutOfRange,
			fmt.Sprintf("index %d out of range for type axis '%s' of size %d", i, a.name, len(a.mask)),
			map[string]any{"axis": a.name, "index": i, "size": len(a.mask)})
	}
	return a.mask[i], nil
}

// ActiveCount returns the number of active catalog entries.
func (a *TypeAxis) ActiveCount() int {
	n := 0
	for _, on := range a.mask {
		if on {
			n++
		}
	}
	return n
}

// ActiveIndices returns the active catalog positions in catalog order.
func (a *TypeAxis) ActiveIndices() []int {
	out := make([]int, 0, len(a.mask))
	for i, on := range a.mask {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// ActiveInputs returns the active identities in catalog order.
func (a *TypeAxis) ActiveInputs() []string {
	out := make([]string, 0, len(a.mask))
	for _, i := range a.ActiveIndices() {
		out = append(out, a.catalog[i])
	}
	return out
}

func (a *TypeAxis) clone() Axis {
	return &TypeAxis{
		base:    a.base,
		catalog: slices.Clone(a.catalog),
		mask:    slices.Clone(a.mask),
	}
}
