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

package hardware

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/host-inventory/pkg/collector/file"
	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

// DefaultVendorPath is the DMI file holding the system manufacturer.
const DefaultVendorPath = "/sys/class/dmi/id/sys_vendor"

// VendorCollector reports the machine manufacturer.
type VendorCollector struct {
	// Path is the identity file to read.
	Path string
	// Parser reads Path. Nil means a host filesystem parser.
	Parser *file.Parser
}

// NewVendorCollector returns a collector reading path, or the default DMI
// path when path is empty.
func NewVendorCollector(path string) *VendorCollector {
	if path == "" {
		path = DefaultVendorPath
	}
	return &VendorCollector{Path: path}
}

// Name implements collector.Collector.
func (c *VendorCollector) Name() string {
	return inventory.FieldPCManufacturer
}

// Collect returns the first line of the identity file, or absent when the
// file cannot be read or is empty.
func (c *VendorCollector) Collect(ctx context.Context) inventory.Result {
	if err := ctx.Err(); err != nil {
		return inventory.Absent(err)
	}

	p := c.Parser
	if p == nil {
		p = file.NewParser(file.WithSkipComments(false))
	}

	vendor, err := p.FirstLine(c.Path)
	if err != nil {
		slog.Debug("vendor identity unavailable", slog.String("path", c.Path), slog.String("error", err.Error()))
		return inventory.Absent(err)
	}
	if vendor == "" {
		return inventory.Absent(nil)
	}

	return inventory.Present(vendor)
}
