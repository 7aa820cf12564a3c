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

package network

import (
	"context"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// ConnectionSource is the socket table capability consumed by the probe.
type ConnectionSource interface {
	Connections(ctx context.Context) ([]psnet.ConnectionStat, error)
}

// HostConnections reads IPv4 and IPv6 sockets from the host through gopsutil.
type HostConnections struct{}

// Connections implements ConnectionSource.
func (HostConnections) Connections(ctx context.Context) ([]psnet.ConnectionStat, error) {
	return psnet.ConnectionsWithContext(ctx, "inet")
}
