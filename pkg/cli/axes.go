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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchsweep/pkg/report"
)

func axesCmd() *cli.Command {
	return &cli.Command{
		Name:  "axes",
		Usage: "Show every axis input of one benchmark",
		Description: `Show the inputs of every axis of a benchmark, one row per input.

Power-of-two axes describe each input as 2^v = N. Type axes show the
human-readable form of mangled type names and whether each entry is active.`,
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{
				Name:     "benchmark",
				Aliases:  []string{"b"},
				Usage:    "Benchmark name",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}
			b, err := reg.Get(cmd.String("benchmark"))
			if err != nil {
				return fmt.Errorf("failed to find benchmark: %w", err)
			}
			r, err := report.BuildAxes(b)
			if err != nil {
				return err
			}
			r.Stamp(version)
			return write(ctx, cmd, r)
		},
	}
}
