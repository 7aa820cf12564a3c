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

package defaults

import "time"

// Probe timeouts for host data collection.
const (
	// ProbeTimeout bounds a single probe. A probe that runs past it is
	// recorded as absent and the snapshot continues with the next probe.
	ProbeTimeout = 10 * time.Second

	// CommandTimeout bounds one external diagnostic command (lsusb, xrandr, ...).
	// Shorter than ProbeTimeout so a probe running several commands can
	// still report the ones that finished.
	CommandTimeout = 5 * time.Second
)

// Transport timeouts for delivering the snapshot to the collector.
const (
	// TransportDialTimeout is the timeout for establishing the collector connection.
	TransportDialTimeout = 5 * time.Second

	// TransportWriteTimeout is the deadline for writing the full payload.
	TransportWriteTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISnapshotTimeout is the default timeout for a whole collect-and-send run.
	CLISnapshotTimeout = 5 * time.Minute
)

// CollectorAddress is the default collector endpoint.
const CollectorAddress = "192.168.1.17:12345"
