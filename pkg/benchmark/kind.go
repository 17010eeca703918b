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

package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/NVIDIA/benchsweep/pkg/errors"
)

// NoopKind is the name of the built-in kind that does nothing when run.
const NoopKind = "noop"

// Kind identifies what a benchmark does. Implementations must be able to
// produce a blank instance of themselves; Clone relies on it.
type Kind interface {
	KindName() string
	NewInstance() Kind
}

// Runner is implemented by kinds that can execute a single state.
type Runner interface {
	Run(ctx context.Context, s *State) error
}

// Func is the body of a FuncKind.
type Func func(ctx context.Context, s *State) error

// FuncKind adapts a plain function into a Kind.
type FuncKind struct {
	name string
	fn   Func
}

// NewFuncKind returns a kind named name that runs fn. A nil fn runs nothing.
func NewFuncKind(name string, fn Func) *FuncKind {
	return &FuncKind{name: name, fn: fn}
}

func (k *FuncKind) KindName() string { return k.name }

func (k *FuncKind) NewInstance() Kind {
	return &FuncKind{name: k.name, fn: k.fn}
}

func (k *FuncKind) Run(ctx context.Context, s *State) error {
	if k.fn == nil {
		return nil
	}
	return k.fn(ctx, s)
}

var (
	globalKinds = make(map[string]Kind)
	globalMu    sync.RWMutex
)

func init() {
	MustRegisterKind(NewFuncKind(NoopKind, nil))
}

// RegisterKind makes k available to LookupKind under its name.
// Registering a name twice fails.
func RegisterKind(k Kind) error {
	if k == nil || k.KindName() == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "benchmark kind must have a name")
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	name := k.KindName()
	if _, exists := globalKinds[name]; exists {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("benchmark kind %s already registered", name),
			map[string]any{"kind": name})
	}
	globalKinds[name] = k
	slog.Debug("registered benchmark kind", "kind", name)
	return nil
}

// MustRegisterKind is RegisterKind for use from init; it panics on error.
func MustRegisterKind(k Kind) {
	if err := RegisterKind(k); err != nil {
		panic(err)
	}
}

// LookupKind returns a blank instance of the kind registered as name.
func LookupKind(name string) (Kind, error) {
	globalMu.RLock()
	defer globalMu.RUnlock()

	k, ok := globalKinds[name]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("no benchmark kind named '%s'; registered kinds: %v", name, sortedKindNames()),
			map[string]any{"kind": name, "valid": sortedKindNames()})
	}
	return k.NewInstance(), nil
}

// MustLookupKind is LookupKind that panics when name is unknown.
func MustLookupKind(name string) Kind {
	k, err := LookupKind(name)
	if err != nil {
		panic(err)
	}
	return k
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return sortedKindNames()
}

// caller holds globalMu.
func sortedKindNames() []string {
	names := make([]string, 0, len(globalKinds))
	for name := range globalKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
