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

package ports

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/host-inventory/pkg/collector/command"
	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

// query is one isolated sub-query of the port inventory.
type query struct {
	category string
	command  string
	parse    func(string) []string
}

var queries = []query{
	{inventory.PortUSB, "lsusb", ParseUSB},
	{inventory.PortHDMI, "xrandr", func(s string) []string { return ParseDisplay(s, "HDMI") }},
	{inventory.PortVGA, "xrandr", func(s string) []string { return ParseDisplay(s, "VGA") }},
	{inventory.PortEthernet, "ifconfig", ParseEthernet},
}

// Collector inventories physical ports by category.
type Collector struct {
	Runner command.Runner
}

// NewCollector returns a collector running commands through r, or the
// host runner when r is nil.
func NewCollector(r command.Runner) *Collector {
	if r == nil {
		r = command.NewExecRunner()
	}
	return &Collector{Runner: r}
}

// Name implements collector.Collector.
func (c *Collector) Name() string {
	return inventory.FieldPhysicalPorts
}

// Collect runs each sub-query independently. A category whose command fails
// is left out of the result; the others are still reported. The result is
// always present, and degraded when at least one sub-query failed.
func (c *Collector) Collect(ctx context.Context) inventory.Result {
	res := make(inventory.PhysicalPorts, 0, len(queries))
	var firstErr error

	for _, q := range queries {
		out, err := c.Runner.Run(ctx, q.command)
		if err != nil {
			slog.Debug("port query failed",
				slog.String("category", q.category),
				slog.String("command", q.command),
				slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		res = append(res, inventory.PortGroup{
			Category:    q.category,
			Descriptors: q.parse(string(out)),
		})
	}

	if firstErr != nil {
		return inventory.Degraded(res, firstErr)
	}
	return inventory.Present(res)
}
