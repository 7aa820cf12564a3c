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

// Package snapshotter assembles a host inventory snapshot from the probe set.
//
// # Assembly
//
// NodeSnapshotter runs each probe once, in field order, under its own
// deadline (defaults.ProbeTimeout unless ProbeTimeout is set). The outcome
// of each probe decides what the snapshot records:
//
//   - present: the value is recorded
//   - degraded: the partial value is recorded and the cause becomes a diagnostic
//   - absent: null is recorded and the cause, if any, becomes a diagnostic
//   - fatal: assembly stops and nothing is serialized
//
// A probe that exceeds its deadline or panics is recorded as absent with a
// TIMEOUT or INTERNAL diagnostic. Canceling the parent context stops
// assembly.
//
// # Snapshot
//
// Snapshot carries a header (kind, apiVersion, metadata with timestamp,
// version, snapshot-id and source-node), the fields in probe order, and the
// diagnostics. JSON and YAML output keep field order.
//
// # Usage
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version:    version,
//	    Serializer: serializer.NewStdoutWriter(serializer.FormatYAML),
//	}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
//
// # Metrics
//
// Collection duration and outcome, per-probe duration and status, and the
// diagnostic count of the last snapshot are exported through the default
// Prometheus registry under the hostinv_ prefix.
package snapshotter
