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

// Package cli implements the hostinv command-line interface.
//
// # Commands
//
// snapshot - collect and deliver one host inventory snapshot (default):
//
//	hostinv snapshot [--collector tcp://HOST:PORT|FILE|-] [--format json|yaml|text|table]
//
// version - print build information:
//
//	hostinv version
//
// # Global Flags
//
//	--config      YAML or JSON config file (env HOSTINV_CONFIG)
//	--log-level   debug, info, warn, error (env LOG_LEVEL)
//
// # Snapshot Flags
//
//	--collector, -o   destination (default tcp://192.168.1.17:12345)
//	--format, -t      json, yaml, text, table (default json)
//	--probe-timeout   deadline per probe (default 10s)
//	--dial-timeout    deadline for connecting to the collector (default 5s)
//	--metrics-file    Prometheus textfile written after the run
//
// Each snapshot flag has a HOSTINV_* environment counterpart. See pkg/config
// for the precedence rules.
//
// # Exit Codes
//
//	0  Success
//	1  Any failure: invalid configuration, a fatal probe, or a failed delivery
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/host-inventory/pkg/cli.version=1.0.0'"
package cli
