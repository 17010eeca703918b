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

// Package report builds the read-only views of a benchmark registry shared by
// the command line and the HTTP API.
//
// Three reports exist:
//
//   - List summarizes every benchmark: kind, devices, axes and the number of
//     configurations a full sweep runs.
//   - Axes lists every input of every axis of one benchmark, with
//     power-of-two descriptions and demangled type names.
//   - Plan clones the registry, applies type axis selections to the clones
//     and enumerates every configuration, devices outermost.
//
// Every report implements serializer.Tabular so it renders as a table as well
// as JSON or YAML.
package report
