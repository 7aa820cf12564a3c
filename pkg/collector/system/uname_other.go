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

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

// HostIdentity assembles the identity tuple from gopsutil host information
// on platforms without uname(2).
func HostIdentity(ctx context.Context) (inventory.SystemIdentity, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return inventory.SystemIdentity{}, fmt.Errorf("failed to read host info: %w", err)
	}

	system := info.OS
	if system != "" {
		system = strings.ToUpper(system[:1]) + system[1:]
	}

	return inventory.SystemIdentity{
		System:  system,
		Node:    info.Hostname,
		Release: info.PlatformVersion,
		Version: info.KernelVersion,
		Machine: info.KernelArch,
	}, nil
}
