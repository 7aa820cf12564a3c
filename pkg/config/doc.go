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

// Package config resolves the runtime configuration of hostinv.
//
// Sources are layered, lowest precedence first:
//
//  1. built-in defaults (Default)
//  2. a YAML or JSON config file (Load)
//  3. environment variables, optionally seeded from a .env file
//     (LoadDotEnv, ApplyEnv)
//  4. command-line flags, applied by pkg/cli
//
// Example config file:
//
//	collector: tcp://192.168.1.17:12345
//	format: json
//	probeTimeout: 10s
//	dialTimeout: 5s
//	metricsFile: /var/lib/node_exporter/hostinv.prom
//	paths:
//	  apps: /usr/share/applications
package config
