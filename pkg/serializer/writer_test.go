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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testTable struct{}

func (testTable) Columns() []string { return []string{"BENCHMARK", "CONFIGS"} }

func (testTable) Rows() [][]string {
	return [][]string{{"copy", Count(1 << 20)}, {"reduce", "4"}}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	data := []testConfig{{Name: "test1", Value: 123}, {Name: "test2", Value: 456}}
	require.NoError(t, w.Serialize(context.Background(), data))

	var got []testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, data, got)
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	data := []testConfig{{Name: "test1", Value: 123}, {Name: "test2", Value: 456}}
	require.NoError(t, w.Serialize(context.Background(), data))

	var got []testConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, data, got)
}

func TestWriter_SerializeTable(t *testing.T) {
	tests := []struct {
		name string
		data any
		want []string
	}{
		{
			name: "flattened",
			data: []any{testConfig{Name: "test1", Value: 123}, testConfig{Name: "test2", Value: 456}},
			want: []string{"FIELD", "VALUE", "[0].Name", "test1", "[1].Value", "456"},
		},
		{
			name: "tabular",
			data: testTable{},
			want: []string{"BENCHMARK", "---------", "copy", "1,048,576", "reduce"},
		},
		{
			name: "stringer",
			data: struct{ Timeout time.Duration }{15 * time.Second},
			want: []string{"Timeout", "15s"},
		},
		{
			name: "empty",
			data: struct{}{},
			want: []string{"<empty>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), tt.data))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter("invalid", &buf)
	require.NoError(t, w.Serialize(context.Background(), testConfig{Name: "test", Value: 1}))

	var got testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "test", got.Name)
}

func TestWriter_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, NewWriter(FormatJSON, &buf).Serialize(ctx, 1))
	assert.Zero(t, buf.Len())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	w := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, w.Serialize(context.Background(), testConfig{Name: "file", Value: 7}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "name: file"))

	stdout := NewFileWriterOrStdout(FormatJSON, "  ")
	assert.Same(t, os.Stdout, stdout.output)
	assert.NoError(t, stdout.Close())

	bad := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "dir", "out.json"))
	assert.Same(t, os.Stdout, bad.output)
}

func TestFormat(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("xml").IsUnknown())
	assert.Equal(t, "12,345", Count(12345))
	assert.Equal(t, "0", Count(uint64(0)))
}
