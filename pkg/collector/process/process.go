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

package process

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

// Collector enumerates running processes.
type Collector struct {
	Source Source
}

// NewCollector returns a collector backed by the host process table.
func NewCollector() *Collector {
	return &Collector{Source: HostSource{}}
}

// Name implements collector.Collector.
func (c *Collector) Name() string {
	return inventory.FieldRunningProcesses
}

// Collect lists every process with id, name and owner, sorted by pid.
// A process whose name cannot be read (typically because it exited during
// enumeration) is omitted. An unreadable owner is reported as null.
func (c *Collector) Collect(ctx context.Context) inventory.Result {
	pids, err := c.Source.PIDs(ctx)
	if err != nil {
		return inventory.Absent(fmt.Errorf("failed to list processes: %w", err))
	}

	slices.Sort(pids)
	records := make([]inventory.ProcessRecord, 0, len(pids))
	skipped := 0

	for _, pid := range pids {
		if err := ctx.Err(); err != nil {
			return inventory.Absent(err)
		}

		name, err := c.Source.Name(ctx, pid)
		if err != nil {
			skipped++
			continue
		}

		rec := inventory.ProcessRecord{PID: pid, Name: name}
		if user, err := c.Source.Username(ctx, pid); err == nil {
			rec.Username = &user
		}
		records = append(records, rec)
	}

	slog.Debug("processes enumerated",
		slog.Int("count", len(records)),
		slog.Int("skipped", skipped))

	return inventory.Present(records)
}
