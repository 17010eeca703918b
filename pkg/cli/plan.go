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

	"github.com/NVIDIA/benchsweep/pkg/defaults"
	"github.com/NVIDIA/benchsweep/pkg/report"
)

func planCmd() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Enumerate every configuration of a sweep",
		Description: `Clone the benchmarks of a sweep file and print every configuration each
clone would run, devices outermost and the first axis varying fastest.

Selections narrow type axes on the clones only:

  benchsweep plan -f sweep.yaml --select copy:T=f,d --select reduce:T=d`,
		// Commas belong to a selection's input list; repeat --select instead.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{
				Name:    "benchmark",
				Aliases: []string{"b"},
				Usage:   "Only plan the named benchmark",
			},
			&cli.StringSliceFlag{
				Name:    "select",
				Aliases: []string{"s"},
				Usage:   "Activate type axis inputs, as [benchmark:]axis=input[,input...] (repeatable)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIPlanTimeout,
				Usage: "Give up enumerating after this long",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			r, err := report.BuildPlan(ctx, reg, report.PlanOptions{
				Benchmark:  cmd.String("benchmark"),
				Selections: cmd.StringSlice("select"),
			})
			if err != nil {
				return fmt.Errorf("failed to build plan: %w", err)
			}
			r.Stamp(version)
			return write(ctx, cmd, r)
		},
	}
}
