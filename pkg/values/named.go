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
	"slices"

	"github.com/NVIDIA/benchsweep/pkg/errors"
)

// Entry is a single name/value pair in a Named store.
type Entry struct {
	Name  string
	Value Value
}

// Named is an ordered sequence of entries. Insertion order is preserved and
// duplicate names are kept; lookups resolve to the first match.
// The zero value is an empty store ready for use.
type Named struct {
	entries []Entry
}

// SetInt64 appends an int64 entry.
func (n *Named) SetInt64(name string, v int64) { n.SetValue(name, Int64(v)) }

// SetFloat64 appends a float64 entry.
func (n *Named) SetFloat64(name string, v float64) { n.SetValue(name, Float64(v)) }

// SetString appends a string entry.
func (n *Named) SetString(name, v string) { n.SetValue(name, String(v)) }

// SetValue appends an entry holding v.
func (n *Named) SetValue(name string, v Value) {
	n.entries = append(n.entries, Entry{Name: name, Value: v})
}

func (n *Named) index(name string) int {
	return slices.IndexFunc(n.entries, func(e Entry) bool { return e.Name == name })
}

// GetValue returns the first value stored under name.
func (n *Named) GetValue(name string) (Value, error) {
	i := n.index(name)
	if i < 0 {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("no value with name '%s'", name),
			map[string]any{"name": name})
	}
	return n.entries[i].Value, nil
}

// GetType reports the kind of the first value stored under name.
func (n *Named) GetType(name string) (Kind, error) {
	v, err := n.GetValue(name)
	if err != nil {
		return 0, err
	}
	k, err := KindOf(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeUnknownVariant,
			fmt.Sprintf("unknown variant type for entry '%s'", name), err)
	}
	return k, nil
}

// GetInt64 returns the first value under name narrowed to int64.
func (n *Named) GetInt64(name string) (int64, error) {
	v, err := n.GetValue(name)
	if err == nil {
		var out int64
		if out, err = AsInt64(v); err == nil {
			return out, nil
		}
	}
	return 0, lookupError(KindInt64, name, err)
}

// GetFloat64 returns the first value under name narrowed to float64.
func (n *Named) GetFloat64(name string) (float64, error) {
	v, err := n.GetValue(name)
	if err == nil {
		var out float64
		if out, err = AsFloat64(v); err == nil {
			return out, nil
		}
	}
	return 0, lookupError(KindFloat64, name, err)
}

// GetString returns the first value under name narrowed to string.
func (n *Named) GetString(name string) (string, error) {
	v, err := n.GetValue(name)
	if err == nil {
		var out string
		if out, err = AsString(v); err == nil {
			return out, nil
		}
	}
	return "", lookupError(KindString, name, err)
}

// lookupError keeps the code of the original failure so callers can still
// tell a missing name from a kind mismatch.
func lookupError(k Kind, name string, cause error) error {
	return errors.WrapWithContext(errors.CodeOf(cause),
		fmt.Sprintf("error looking up %s value '%s'", k, name), cause,
		map[string]any{"name": name, "requested": k.String()})
}

// Has reports whether any entry is named name.
func (n *Named) Has(name string) bool {
	return n.index(name) >= 0
}

// Names returns entry names in insertion order, duplicates included.
func (n *Named) Names() []string {
	names := make([]string, len(n.entries))
	for i, e := range n.entries {
		names[i] = e.Name
	}
	return names
}

// Size returns the number of entries.
func (n *Named) Size() int {
	return len(n.entries)
}

// Entries returns a copy of the entries in insertion order.
func (n *Named) Entries() []Entry {
	return slices.Clone(n.entries)
}

// Clear removes all entries.
func (n *Named) Clear() {
	n.entries = nil
}

// Append adds all of other's entries after the existing ones.
func (n *Named) Append(other *Named) {
	if other == nil {
		return
	}
	n.entries = append(n.entries, other.entries...)
}

// Remove deletes the first entry named name. It is a no-op when absent.
func (n *Named) Remove(name string) {
	if i := n.index(name); i >= 0 {
		n.entries = slices.Delete(n.entries, i, i+1)
	}
}

// Clone returns an independent copy. Values are immutable scalars, so
// copying the entry slice is sufficient.
func (n *Named) Clone() *Named {
	return &Named{entries: slices.Clone(n.entries)}
}

type entryDoc struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value Value  `json:"value" yaml:"value"`
}

func (n Named) docs() []entryDoc {
	out := make([]entryDoc, 0, len(n.entries))
	for _, e := range n.entries {
		k, err := KindOf(e.Value)
		typ := k.String()
		if err != nil {
			typ = "unknown"
		}
		out = append(out, entryDoc{Name: e.Name, Type: typ, Value: e.Value})
	}
	return out
}

// MarshalJSON emits the entries as an ordered list of {name, type, value}.
func (n Named) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.docs())
}

// MarshalYAML emits the entries as an ordered list of {name, type, value}.
func (n Named) MarshalYAML() (any, error) {
	return n.docs(), nil
}
