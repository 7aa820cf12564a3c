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
	"errors"
	"fmt"
	"log/slog"
	"syscall"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

const statusListen = "LISTEN"

// Collector reports sockets in listening state with their service names.
type Collector struct {
	Source   ConnectionSource
	Resolver ServiceResolver
}

// NewCollector returns a collector over the host socket table, resolving
// names from servicesPath (DefaultServicesPath when empty).
func NewCollector(servicesPath string) *Collector {
	return &Collector{
		Source:   HostConnections{},
		Resolver: NewServiceFile(servicesPath),
	}
}

// Name implements collector.Collector.
func (c *Collector) Name() string {
	return inventory.FieldOpenPorts
}

// Collect lists listening sockets in socket table order. A port without a
// registered service name is reported as "unknown". When the service table
// itself cannot be read the records are still returned, degraded.
// Failure to enumerate the socket table yields absent.
func (c *Collector) Collect(ctx context.Context) inventory.Result {
	conns, err := c.Source.Connections(ctx)
	if err != nil {
		return inventory.Absent(fmt.Errorf("failed to list connections: %w", err))
	}

	records := make([]inventory.OpenPortRecord, 0)
	var resolveErr error

	for _, conn := range conns {
		if conn.Status != statusListen {
			continue
		}

		port := conn.Laddr.Port
		service, err := c.Resolver.LookupPort(protocol(conn), port)
		if err != nil {
			service = inventory.UnknownService
			if !errors.Is(err, ErrUnknownService) && resolveErr == nil {
				resolveErr = err
			}
		}

		records = append(records, inventory.OpenPortRecord{Port: port, Service: service})
	}

	slog.Debug("listening sockets enumerated",
		slog.Int("connections", len(conns)),
		slog.Int("listening", len(records)))

	if resolveErr != nil {
		return inventory.Degraded(records, resolveErr)
	}
	return inventory.Present(records)
}

func protocol(conn psnet.ConnectionStat) string {
	switch conn.Type {
	case syscall.SOCK_STREAM:
		return "tcp"
	case syscall.SOCK_DGRAM:
		return "udp"
	default:
		return ""
	}
}
