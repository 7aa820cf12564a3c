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
	"context"
	"testing"

	"github.com/NVIDIA/host-inventory/pkg/collector/apps"
	"github.com/NVIDIA/host-inventory/pkg/collector/hardware"
	"github.com/NVIDIA/host-inventory/pkg/collector/network"
	"github.com/NVIDIA/host-inventory/pkg/collector/peripheral"
	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

type nopRunner struct{}

func (nopRunner) Run(context.Context, string, ...string) ([]byte, error) {
	return nil, nil
}

func TestNewDefaultFactory_Defaults(t *testing.T) {
	f := NewDefaultFactory()

	if f.Runner == nil {
		t.Error("expected default runner")
	}
	if f.VendorPath != hardware.DefaultVendorPath {
		t.Errorf("VendorPath = %s", f.VendorPath)
	}
	if f.ServicesPath != network.DefaultServicesPath {
		t.Errorf("ServicesPath = %s", f.ServicesPath)
	}
	if f.AppsDir != apps.DefaultDir {
		t.Errorf("AppsDir = %s", f.AppsDir)
	}
	if f.DiskPath != "/" {
		t.Errorf("DiskPath = %s", f.DiskPath)
	}
}

func TestNewDefaultFactory_Options(t *testing.T) {
	r := nopRunner{}
	f := NewDefaultFactory(
		WithRunner(r),
		WithVendorPath("/tmp/vendor"),
		WithServicesPath("/tmp/services"),
		WithAppsDir("/opt/apps"),
		WithDiskPath("/data"),
	)

	if f.Runner != r {
		t.Error("runner option not applied")
	}
	if f.VendorPath != "/tmp/vendor" || f.ServicesPath != "/tmp/services" ||
		f.AppsDir != "/opt/apps" || f.DiskPath != "/data" {
		t.Errorf("path options not applied: %+v", f)
	}

	bt, ok := f.CreateBluetoothCollector().(*peripheral.BluetoothCollector)
	if !ok {
		t.Fatal("expected *peripheral.BluetoothCollector")
	}
	if bt.Runner != r {
		t.Error("bluetooth collector should use the factory runner")
	}

	v, ok := f.CreateVendorCollector().(*hardware.VendorCollector)
	if !ok || v.Path != "/tmp/vendor" {
		t.Errorf("vendor collector not configured: %+v", v)
	}

	op, ok := f.CreateOpenPortsCollector().(*network.Collector)
	if !ok {
		t.Fatal("expected *network.Collector")
	}
	if sf, ok := op.Resolver.(*network.ServiceFile); !ok || sf.Path != "/tmp/services" {
		t.Errorf("open ports resolver not configured: %+v", op.Resolver)
	}

	a, ok := f.CreateAppsCollector().(*apps.Collector)
	if !ok || a.Dir != "opt/apps" {
		t.Errorf("apps collector dir = %q", a.Dir)
	}
}

func TestProbeSetFieldOrder(t *testing.T) {
	set := ProbeSet(NewDefaultFactory(WithRunner(nopRunner{})))

	if len(set) != len(inventory.FieldNames) {
		t.Fatalf("probe set has %d probes, want %d", len(set), len(inventory.FieldNames))
	}
	for i, c := range set {
		if c == nil {
			t.Fatalf("probe %d is nil", i)
		}
		if c.Name() != inventory.FieldNames[i] {
			t.Errorf("probe %d name = %s, want %s", i, c.Name(), inventory.FieldNames[i])
		}
	}
}
