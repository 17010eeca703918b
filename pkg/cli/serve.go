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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/benchsweep/pkg/defaults"
	"github.com/NVIDIA/benchsweep/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a sweep file over a read-only HTTP API",
		Description: `Load a sweep file and serve its benchmarks over HTTP until interrupted.

Routes:
  GET /v1/benchmarks               summaries and configuration counts
  GET /v1/benchmarks/{name}        one benchmark
  GET /v1/benchmarks/{name}/axes   every axis input of one benchmark
  GET /v1/plan                     enumerated configurations (?benchmark=&select=)
  GET /health, /ready, /metrics

Plan selections apply to per-request clones; the loaded sweep never changes.`,
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to listen on (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   defaults.ServerPort,
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			cfg.Address = cmd.String("address")
			cfg.Port = int(cmd.Int("port"))

			return server.Run(ctx, server.WithConfig(cfg), server.WithRegistry(reg))
		},
	}
}
