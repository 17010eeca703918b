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

package header

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindBenchmarkList, true},
		{KindAxisList, true},
		{KindSweepPlan, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Metadata = map[string]string{"stale": "x"}
	h.Init(KindSweepPlan, APIVersion)

	assert.Equal(t, KindSweepPlan, h.GetKind())
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.NotContains(t, h.Metadata, "stale")

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestStamp(t *testing.T) {
	t.Run("records version", func(t *testing.T) {
		var h Header
		h.Stamp("v1.2.3")
		assert.Equal(t, "v1.2.3", h.Metadata["version"])
	})

	t.Run("empty version ignored", func(t *testing.T) {
		var h Header
		h.Stamp("")
		assert.Nil(t, h.Metadata)
	})
}

func TestInlineEmbedding(t *testing.T) {
	type doc struct {
		Header `json:",inline" yaml:",inline"`

		Items []string `json:"items" yaml:"items"`
	}

	d := doc{Items: []string{"copy"}}
	d.Init(KindBenchmarkList, APIVersion)

	j, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(j), `"kind":"BenchmarkList"`)
	assert.Contains(t, string(j), `"apiVersion":"benchsweep.nvidia.com/v1"`)

	y, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(y), "kind: BenchmarkList\n")
	assert.Contains(t, string(y), "items:\n")
}
