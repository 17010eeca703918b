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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchsweep/pkg/report"
	"github.com/NVIDIA/benchsweep/pkg/serializer"
)

var testSweep = filepath.Join("testdata", "sweep.yaml")

// runCLI runs the root command and returns what it wrote to --output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out")
	argv := append([]string{name}, args...)
	argv = append(argv, "--output", out)
	if err := newRootCmd().Run(context.Background(), argv); err != nil {
		return "", err
	}
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(content), nil
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "yaml", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "json", format: "json", wantFormat: serializer.FormatJSON},
		{name: "table", format: "table", wantFormat: serializer.FormatTable},
		{name: "xml", format: "xml", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.wantFormat, got)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestCommands(t *testing.T) {
	t.Run("list json", func(t *testing.T) {
		out, err := runCLI(t, "list", "--file", testSweep, "--format", "json")
		require.NoError(t, err)
		var r report.List
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Len(t, r.Benchmarks, 2)
		assert.Equal(t, "BenchmarkList", r.Kind.String())
		assert.Equal(t, versionDefault, r.Metadata["version"])
	})

	t.Run("list table", func(t *testing.T) {
		out, err := runCLI(t, "list", "-f", testSweep)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "BENCHMARK"))
		assert.Contains(t, out, "T[2/3]")
	})

	t.Run("plan yaml", func(t *testing.T) {
		out, err := runCLI(t, "plan", "-f", testSweep, "--select", "reduce:T=d", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "kind: SweepPlan")
		assert.Contains(t, out, "benchmark: reduce")
		assert.Contains(t, out, "name: Elements")
	})

	t.Run("plan multi-input selection", func(t *testing.T) {
		out, err := runCLI(t, "plan", "-f", testSweep, "-b", "copy", "--select", "copy:T=i,f")
		require.NoError(t, err)
		assert.Contains(t, out, "T=i")
		assert.Contains(t, out, "T=f")
		assert.NotContains(t, out, "T=d")
	})

	t.Run("plan repeated selections", func(t *testing.T) {
		out, err := runCLI(t, "plan", "-f", testSweep,
			"--select", "copy:T=i,d", "--select", "reduce:T=f", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "benchmark: copy")
		assert.Contains(t, out, "benchmark: reduce")
	})

	t.Run("axes", func(t *testing.T) {
		out, err := runCLI(t, "axes", "-f", testSweep, "--benchmark", "copy")
		require.NoError(t, err)
		assert.Contains(t, out, "2^10 = 1024")
		assert.Contains(t, out, "double")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCLI(t, "list", "--file", filepath.Join("testdata", "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := runCLI(t, "list", "--file", testSweep, "--format", "xml")
		assert.Error(t, err)
	})
}

func TestServeCommand(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := newRootCmd().Run(context.Background(),
			[]string{name, "serve", "--file", filepath.Join("testdata", "missing.yaml")})
		assert.Error(t, err)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := newRootCmd().Run(ctx,
			[]string{name, "serve", "--file", testSweep, "--address", "127.0.0.1", "--port", "0"})
		assert.NoError(t, err)
	})
}
