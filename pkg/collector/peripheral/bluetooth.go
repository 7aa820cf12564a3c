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

package peripheral

import (
	"context"
	"log/slog"
	"strings"

	"github.com/NVIDIA/host-inventory/pkg/collector/command"
	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

const (
	bluetoothCommand = "bluetoothctl"
	connectedMarker  = "Connected: yes"
)

// BluetoothCollector reports the identifier of the connected bluetooth
// companion device.
type BluetoothCollector struct {
	Runner command.Runner
}

// NewBluetoothCollector returns a collector running commands through r,
// or the host runner when r is nil.
func NewBluetoothCollector(r command.Runner) *BluetoothCollector {
	if r == nil {
		r = command.NewExecRunner()
	}
	return &BluetoothCollector{Runner: r}
}

// Name implements collector.Collector.
func (c *BluetoothCollector) Name() string {
	return inventory.FieldBluetoothDevice
}

// Collect runs "bluetoothctl info" and returns the trailing token of the
// first connected line. Absent when the command fails or nothing is connected.
func (c *BluetoothCollector) Collect(ctx context.Context) inventory.Result {
	out, err := c.Runner.Run(ctx, bluetoothCommand, "info")
	if err != nil {
		slog.Debug("bluetooth query failed", slog.String("error", err.Error()))
		return inventory.Absent(err)
	}

	device, ok := ParseConnected(string(out))
	if !ok {
		return inventory.Absent(nil)
	}
	return inventory.Present(device)
}

// ParseConnected scans bluetoothctl output for the first line containing
// "Connected: yes" and returns its last whitespace-delimited token.
// Only the first connected device is reported.
func ParseConnected(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, connectedMarker) {
			continue
		}
		fields := strings.Fields(line)
		return fields[len(fields)-1], true
	}
	return "", false
}
