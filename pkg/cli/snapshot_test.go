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

package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/host-inventory/pkg/collector"
	"github.com/NVIDIA/host-inventory/pkg/config"
	"github.com/NVIDIA/host-inventory/pkg/inventory"
	"github.com/NVIDIA/host-inventory/pkg/serializer"
)

type stubProbe struct {
	name   string
	result inventory.Result
}

func (p stubProbe) Name() string                              { return p.name }
func (p stubProbe) Collect(context.Context) inventory.Result { return p.result }

type stubFactory struct {
	fatal bool
}

func (f stubFactory) probe(name string) collector.Collector {
	return stubProbe{name: name, result: inventory.Present(name)}
}

func (f stubFactory) CreateVendorCollector() collector.Collector {
	return f.probe(inventory.FieldPCManufacturer)
}

func (f stubFactory) CreateBluetoothCollector() collector.Collector {
	return stubProbe{name: inventory.FieldBluetoothDevice, result: inventory.Absent(nil)}
}

func (f stubFactory) CreatePortsCollector() collector.Collector {
	return f.probe(inventory.FieldPhysicalPorts)
}

func (f stubFactory) CreateSystemCollector() collector.Collector {
	if f.fatal {
		return stubProbe{name: inventory.FieldSystem, result: inventory.Fatal(stderrors.New("broken"))}
	}
	return f.probe(inventory.FieldSystem)
}

func (f stubFactory) CreateResourceCollectors() []collector.Collector {
	var out []collector.Collector
	for _, n := range inventory.FieldNames[4:17] {
		out = append(out, f.probe(n))
	}
	return out
}

func (f stubFactory) CreateProcessCollector() collector.Collector {
	return f.probe(inventory.FieldRunningProcesses)
}

func (f stubFactory) CreateOpenPortsCollector() collector.Collector {
	return f.probe(inventory.FieldOpenPorts)
}

func (f stubFactory) CreateAppsCollector() collector.Collector {
	return f.probe(inventory.FieldInstalledApps)
}

func useFactory(t *testing.T, f collector.Factory) {
	t.Helper()
	orig := newFactory
	newFactory = func(config.Config) collector.Factory { return f }
	t.Cleanup(func() { newFactory = orig })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvConfig, config.EnvCollector, config.EnvFormat,
		config.EnvProbeTimeout, config.EnvDialTimeout, config.EnvMetricsFile,
		config.EnvVendorPath, config.EnvServicesPath, config.EnvAppsDir, config.EnvDiskPath,
		"LOG_LEVEL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestSnapshotToFile(t *testing.T) {
	clearEnv(t)
	useFactory(t, stubFactory{})

	dir := t.TempDir()
	out := filepath.Join(dir, "snap.json")
	metrics := filepath.Join(dir, "hostinv.prom")

	err := newRootCmd().Run(context.Background(), []string{
		name, "snapshot", "--collector", out, "--format", "json", "--metrics-file", metrics,
	})
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		Kind        string                     `json:"kind"`
		Fields      map[string]json.RawMessage `json:"fields"`
		Diagnostics []json.RawMessage          `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "Snapshot", doc.Kind)
	assert.Len(t, doc.Fields, len(inventory.FieldNames))
	assert.Equal(t, "null", string(doc.Fields[inventory.FieldBluetoothDevice]))

	m, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(m), "hostinv_snapshot_collection_total")
}

func TestSnapshotFatalProbeFails(t *testing.T) {
	clearEnv(t)
	useFactory(t, stubFactory{fatal: true})

	out := filepath.Join(t.TempDir(), "snap.json")
	err := newRootCmd().Run(context.Background(), []string{name, "snapshot", "--collector", out})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no file may be created on a fatal result")
}

func TestSnapshotFatalKeepsExistingFile(t *testing.T) {
	clearEnv(t)
	useFactory(t, stubFactory{fatal: true})

	out := filepath.Join(t.TempDir(), "snap.json")
	previous := []byte(`{"kind":"Snapshot"}`)
	require.NoError(t, os.WriteFile(out, previous, 0o600))

	err := newRootCmd().Run(context.Background(), []string{name, "snapshot", "--collector", out})
	require.Error(t, err)

	b, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, previous, b, "a failed run must not touch the previous snapshot")
}

func TestSnapshotUnreachableCollector(t *testing.T) {
	clearEnv(t)
	useFactory(t, stubFactory{})

	// Reserve a port and close it so the dial is refused.
	addr := reserveClosedPort(t)

	err := newRootCmd().Run(context.Background(), []string{
		name, "snapshot", "--collector", "tcp://" + addr, "--dial-timeout", "1s",
	})
	require.Error(t, err)
}

func TestSnapshotInvalidFormat(t *testing.T) {
	clearEnv(t)
	useFactory(t, stubFactory{})

	err := newRootCmd().Run(context.Background(), []string{name, "snapshot", "--collector", "-", "--format", "xml"})
	require.Error(t, err)
}

func TestResolveConfigPrecedence(t *testing.T) {
	clearEnv(t)

	cfgPath := filepath.Join(t.TempDir(), "hostinv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"collector: tcp://10.0.0.1:1000\nformat: yaml\nprobeTimeout: 3s\ndialTimeout: 4s\n"), 0o600))

	t.Setenv(config.EnvFormat, "text")
	t.Setenv(config.EnvProbeTimeout, "6s")

	var got config.Config
	cmd := &cli.Command{
		Name:  "test",
		Flags: append(globalFlags(), snapshotFlags()...),
		Action: func(_ context.Context, c *cli.Command) error {
			var err error
			got, err = resolveConfig(c)
			return err
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{
		"test", "--config", cfgPath, "--probe-timeout", "7s",
	}))

	assert.Equal(t, "tcp://10.0.0.1:1000", got.Collector, "file overrides default")
	assert.Equal(t, 4*time.Second, got.DialTimeout, "file overrides default")
	assert.Equal(t, serializer.FormatText, got.Format, "env overrides file")
	assert.Equal(t, 7*time.Second, got.ProbeTimeout, "flag overrides env")
}

func reserveClosedPort(t *testing.T) string {
	t.Helper()
	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}
