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

package collector

import (
	"github.com/NVIDIA/host-inventory/pkg/collector/apps"
	"github.com/NVIDIA/host-inventory/pkg/collector/command"
	"github.com/NVIDIA/host-inventory/pkg/collector/hardware"
	"github.com/NVIDIA/host-inventory/pkg/collector/network"
	"github.com/NVIDIA/host-inventory/pkg/collector/peripheral"
	"github.com/NVIDIA/host-inventory/pkg/collector/ports"
	"github.com/NVIDIA/host-inventory/pkg/collector/process"
	"github.com/NVIDIA/host-inventory/pkg/collector/resource"
	"github.com/NVIDIA/host-inventory/pkg/collector/system"
)

// Factory creates the probes of a snapshot.
type Factory interface {
	CreateVendorCollector() Collector
	CreateBluetoothCollector() Collector
	CreatePortsCollector() Collector
	CreateSystemCollector() Collector
	CreateResourceCollectors() []Collector
	CreateProcessCollector() Collector
	CreateOpenPortsCollector() Collector
	CreateAppsCollector() Collector
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithRunner sets the command runner used by command-backed probes.
func WithRunner(r command.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// WithVendorPath sets the hardware vendor identity file.
func WithVendorPath(p string) Option {
	return func(f *DefaultFactory) {
		f.VendorPath = p
	}
}

// WithServicesPath sets the service-name table used by the open port probe.
func WithServicesPath(p string) Option {
	return func(f *DefaultFactory) {
		f.ServicesPath = p
	}
}

// WithAppsDir sets the application descriptor directory.
func WithAppsDir(dir string) Option {
	return func(f *DefaultFactory) {
		f.AppsDir = dir
	}
}

// WithDiskPath sets the filesystem whose usage is reported.
func WithDiskPath(p string) Option {
	return func(f *DefaultFactory) {
		f.DiskPath = p
	}
}

// DefaultFactory creates probes with production dependencies.
type DefaultFactory struct {
	Runner       command.Runner
	VendorPath   string
	ServicesPath string
	AppsDir      string
	DiskPath     string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Runner:       command.NewExecRunner(),
		VendorPath:   hardware.DefaultVendorPath,
		ServicesPath: network.DefaultServicesPath,
		AppsDir:      apps.DefaultDir,
		DiskPath:     resource.DefaultDiskPath,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateVendorCollector creates the hardware vendor probe.
func (f *DefaultFactory) CreateVendorCollector() Collector {
	return hardware.NewVendorCollector(f.VendorPath)
}

// CreateBluetoothCollector creates the peripheral probe.
func (f *DefaultFactory) CreateBluetoothCollector() Collector {
	return peripheral.NewBluetoothCollector(f.Runner)
}

// CreatePortsCollector creates the physical port inventory probe.
func (f *DefaultFactory) CreatePortsCollector() Collector {
	return ports.NewCollector(f.Runner)
}

// CreateSystemCollector creates the platform identity probe.
func (f *DefaultFactory) CreateSystemCollector() Collector {
	return system.NewCollector()
}

// CreateResourceCollectors creates the resource utilization probe family.
func (f *DefaultFactory) CreateResourceCollectors() []Collector {
	probes := resource.Probes(resource.HostStats{}, f.DiskPath)
	out := make([]Collector, 0, len(probes))
	for _, p := range probes {
		out = append(out, p)
	}
	return out
}

// CreateProcessCollector creates the process enumeration probe.
func (f *DefaultFactory) CreateProcessCollector() Collector {
	return process.NewCollector()
}

// CreateOpenPortsCollector creates the open port probe.
func (f *DefaultFactory) CreateOpenPortsCollector() Collector {
	return network.NewCollector(f.ServicesPath)
}

// CreateAppsCollector creates the installed application probe.
// The directory is resolved against the host root.
func (f *DefaultFactory) CreateAppsCollector() Collector {
	return apps.NewCollector(f.AppsDir)
}

// ProbeSet returns the fixed, ordered list of probes for one snapshot.
// The order defines the field order of the snapshot.
func ProbeSet(f Factory) []Collector {
	set := []Collector{
		f.CreateVendorCollector(),
		f.CreateBluetoothCollector(),
		f.CreatePortsCollector(),
		f.CreateSystemCollector(),
	}
	set = append(set, f.CreateResourceCollectors()...)
	return append(set,
		f.CreateProcessCollector(),
		f.CreateOpenPortsCollector(),
		f.CreateAppsCollector(),
	)
}
