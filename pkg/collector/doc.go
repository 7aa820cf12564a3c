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

// Package collector defines the probe contract and assembles the fixed set of
// probes that make up a host inventory snapshot.
//
// # Core Interface
//
// A probe queries exactly one facet of the host and never fails past its own
// boundary:
//
//	type Collector interface {
//	    Name() string
//	    Collect(ctx context.Context) inventory.Result
//	}
//
// Results are tagged: present, absent, degraded (value plus cause), or fatal
// for always-available facilities that failed. A deadline is always reported
// as absent.
//
// # Factory Pattern
//
// The Factory interface abstracts probe creation so the probe set can be
// built with test doubles:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithServicesPath("/etc/services"),
//	    collector.WithAppsDir("/usr/share/applications"),
//	)
//	probes := collector.ProbeSet(factory)
//
// # Available Probes
//
// In probe set order:
//   - hardware: system manufacturer from DMI
//   - peripheral: connected bluetooth device (bluetoothctl)
//   - ports: USB, HDMI, VGA and Ethernet ports (lsusb, xrandr, ifconfig)
//   - system: uname identity tuple
//   - resource: CPU, memory and disk utilization (gopsutil)
//   - process: running processes (gopsutil)
//   - network: listening sockets with service names (gopsutil, /etc/services)
//   - apps: installed desktop applications
//
// Supporting packages: command runs external commands with deadlines, and
// file parses line-oriented system files.
package collector
