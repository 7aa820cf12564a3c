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

package resource

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultDiskPath is the filesystem whose usage is reported.
const DefaultDiskPath = "/"

// Stats is the resource statistics capability consumed by the probes.
type Stats interface {
	CPUCount(ctx context.Context, logical bool) (int, error)
	CPUPercent(ctx context.Context, perCPU bool) ([]float64, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
}

// HostStats reads resource statistics from the host through gopsutil.
type HostStats struct{}

// CPUCount implements Stats.
func (HostStats) CPUCount(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

// CPUPercent implements Stats. The sample is instantaneous: utilization is
// computed against the previous call rather than over a wait interval.
func (HostStats) CPUPercent(ctx context.Context, perCPU bool) ([]float64, error) {
	return cpu.PercentWithContext(ctx, 0, perCPU)
}

// VirtualMemory implements Stats.
func (HostStats) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

// DiskUsage implements Stats.
func (HostStats) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk usage of %s: %w", path, err)
	}
	return u, nil
}
