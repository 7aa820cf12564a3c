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

	"github.com/shirou/gopsutil/v4/process"
)

// Source is the process table capability consumed by the probe.
type Source interface {
	// PIDs lists the ids of running processes.
	PIDs(ctx context.Context) ([]int32, error)
	// Name returns the executable name of a process.
	Name(ctx context.Context, pid int32) (string, error)
	// Username returns the owning account of a process.
	Username(ctx context.Context, pid int32) (string, error)
}

// HostSource reads the host process table through gopsutil.
type HostSource struct{}

// PIDs implements Source.
func (HostSource) PIDs(ctx context.Context) ([]int32, error) {
	return process.PidsWithContext(ctx)
}

// Name implements Source.
func (HostSource) Name(ctx context.Context, pid int32) (string, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return "", err
	}
	return p.NameWithContext(ctx)
}

// Username implements Source.
func (HostSource) Username(ctx context.Context, pid int32) (string, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return "", err
	}
	return p.UsernameWithContext(ctx)
}
