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
	"errors"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
	"github.com/NVIDIA/host-inventory/pkg/units"
)

var errNoSample = errors.New("cpu utilization sample is empty")

// Probe is one resource utilization reading bound to a snapshot field.
// Failures other than a deadline are fatal.
type Probe struct {
	field string
	read  func(ctx context.Context) (any, error)
}

// Name implements collector.Collector.
func (p *Probe) Name() string {
	return p.field
}

// Collect implements collector.Collector.
func (p *Probe) Collect(ctx context.Context) inventory.Result {
	return inventory.Require(p.read(ctx))
}

// Probes returns the resource probe family in field order, reading disk
// usage of diskPath.
func Probes(stats Stats, diskPath string) []*Probe {
	memory := func(f func(*mem.VirtualMemoryStat) any) func(context.Context) (any, error) {
		return func(ctx context.Context) (any, error) {
			v, err := stats.VirtualMemory(ctx)
			if err != nil {
				return nil, err
			}
			return f(v), nil
		}
	}
	usage := func(f func(*disk.UsageStat) any) func(context.Context) (any, error) {
		return func(ctx context.Context) (any, error) {
			u, err := stats.DiskUsage(ctx, diskPath)
			if err != nil {
				return nil, err
			}
			return f(u), nil
		}
	}

	return []*Probe{
		{inventory.FieldCPUCount, func(ctx context.Context) (any, error) {
			return stats.CPUCount(ctx, true)
		}},
		{inventory.FieldPhysicalCores, func(ctx context.Context) (any, error) {
			return stats.CPUCount(ctx, false)
		}},
		{inventory.FieldCPUUsagePerCore, func(ctx context.Context) (any, error) {
			return stats.CPUPercent(ctx, true)
		}},
		{inventory.FieldTotalCPUUsage, func(ctx context.Context) (any, error) {
			p, err := stats.CPUPercent(ctx, false)
			if err != nil {
				return nil, err
			}
			if len(p) == 0 {
				return nil, errNoSample
			}
			return p[0], nil
		}},
		{inventory.FieldMemory, memory(func(v *mem.VirtualMemoryStat) any { return units.BytesToGB(v.Total) })},
		{inventory.FieldMemoryUsed, memory(func(v *mem.VirtualMemoryStat) any { return units.BytesToGB(v.Used) })},
		{inventory.FieldMemoryFree, memory(func(v *mem.VirtualMemoryStat) any { return units.BytesToGB(v.Free) })},
		{inventory.FieldMemoryAvailable, memory(func(v *mem.VirtualMemoryStat) any { return units.BytesToGB(v.Available) })},
		{inventory.FieldMemoryPercentage, memory(func(v *mem.VirtualMemoryStat) any { return v.UsedPercent })},
		{inventory.FieldDiskUsage, usage(func(u *disk.UsageStat) any { return units.BytesToGB(u.Total) })},
		{inventory.FieldDiskUsed, usage(func(u *disk.UsageStat) any { return units.BytesToGB(u.Used) })},
		{inventory.FieldDiskFree, usage(func(u *disk.UsageStat) any { return units.BytesToGB(u.Free) })},
		{inventory.FieldDiskPercentage, usage(func(u *disk.UsageStat) any { return u.UsedPercent })},
	}
}
