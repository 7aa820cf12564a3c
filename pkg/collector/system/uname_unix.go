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

//go:build linux || darwin || freebsd || netbsd || openbsd

package system

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

// HostIdentity returns the uname(2) tuple of the running kernel.
func HostIdentity(ctx context.Context) (inventory.SystemIdentity, error) {
	if err := ctx.Err(); err != nil {
		return inventory.SystemIdentity{}, err
	}

	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return inventory.SystemIdentity{}, fmt.Errorf("uname failed: %w", err)
	}

	return inventory.SystemIdentity{
		System:  unix.ByteSliceToString(u.Sysname[:]),
		Node:    unix.ByteSliceToString(u.Nodename[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Version: unix.ByteSliceToString(u.Version[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
