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
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/host-inventory/pkg/collector"
	"github.com/NVIDIA/host-inventory/pkg/config"
	"github.com/NVIDIA/host-inventory/pkg/defaults"
	"github.com/NVIDIA/host-inventory/pkg/logging"
	"github.com/NVIDIA/host-inventory/pkg/serializer"
	"github.com/NVIDIA/host-inventory/pkg/snapshotter"
	"github.com/NVIDIA/host-inventory/pkg/transport"
)

const (
	collectorFlagName    = "collector"
	formatFlagName       = "format"
	probeTimeoutFlagName = "probe-timeout"
	dialTimeoutFlagName  = "dial-timeout"
	metricsFileFlagName  = "metrics-file"
	vendorPathFlagName   = "vendor-path"
	servicesPathFlagName = "services-path"
	appsDirFlagName      = "apps-dir"
	diskPathFlagName     = "disk-path"
)

// newFactory builds the probe factory for a run. Tests replace it.
var newFactory = func(cfg config.Config) collector.Factory {
	var opts []collector.Option
	if cfg.VendorPath != "" {
		opts = append(opts, collector.WithVendorPath(cfg.VendorPath))
	}
	if cfg.ServicesPath != "" {
		opts = append(opts, collector.WithServicesPath(cfg.ServicesPath))
	}
	if cfg.AppsDir != "" {
		opts = append(opts, collector.WithAppsDir(cfg.AppsDir))
	}
	if cfg.DiskPath != "" {
		opts = append(opts, collector.WithDiskPath(cfg.DiskPath))
	}
	return collector.NewDefaultFactory(opts...)
}

func snapshotFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    collectorFlagName,
			Aliases: []string{"o"},
			Usage: fmt.Sprintf("destination: tcp://host:port, a file path, or - for stdout (env %s, default tcp://%s)",
				config.EnvCollector, defaults.CollectorAddress),
		},
		&cli.StringFlag{
			Name:    formatFlagName,
			Aliases: []string{"t"},
			Usage: fmt.Sprintf("output format: %v (env %s, default %s)",
				serializer.SupportedFormats(), config.EnvFormat, serializer.FormatJSON),
		},
		&cli.DurationFlag{
			Name:  probeTimeoutFlagName,
			Usage: fmt.Sprintf("deadline for each probe (env %s, default %s)", config.EnvProbeTimeout, defaults.ProbeTimeout),
		},
		&cli.DurationFlag{
			Name:  dialTimeoutFlagName,
			Usage: fmt.Sprintf("deadline for connecting to the collector (env %s, default %s)", config.EnvDialTimeout, defaults.TransportDialTimeout),
		},
		&cli.StringFlag{
			Name:  metricsFileFlagName,
			Usage: fmt.Sprintf("write Prometheus metrics to this textfile after the run (env %s)", config.EnvMetricsFile),
		},
		&cli.StringFlag{
			Name:  vendorPathFlagName,
			Usage: "hardware vendor identity file",
		},
		&cli.StringFlag{
			Name:  servicesPathFlagName,
			Usage: "service-name table for open ports",
		},
		&cli.StringFlag{
			Name:  appsDirFlagName,
			Usage: "directory of .desktop application descriptors",
		},
		&cli.StringFlag{
			Name:  diskPathFlagName,
			Usage: "filesystem whose usage is reported",
		},
	}
}

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Collect a host inventory snapshot and deliver it",
		Description: `Collect a one-shot inventory of this host:
  - hardware vendor and connected Bluetooth device
  - physical ports (USB, HDMI, VGA, Ethernet)
  - system identity, CPU, memory and disk utilization
  - running processes, listening ports and installed applications

The snapshot is sent to the collector as a single TCP payload by default.
Use --collector - to print it instead.

Configuration precedence, lowest first: defaults, --config file,
environment (HOSTINV_*, .env), flags.

# Examples

  hostinv snapshot --collector tcp://10.0.0.5:12345
  hostinv snapshot --collector - --format yaml
  hostinv snapshot --collector /tmp/inventory.json --metrics-file /var/lib/node_exporter/hostinv.prom`,
		Flags:  snapshotFlags(),
		Action: runSnapshot,
	}
}

func runSnapshot(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.LogLevel != cmd.String(logLevelFlagName) {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.CLISnapshotTimeout)
	defer cancel()

	dest, err := serializer.NewDestination(cfg.Format, cfg.Collector, transport.WithDialTimeout(cfg.DialTimeout))
	if err != nil {
		return fmt.Errorf("invalid collector %q: %w", cfg.Collector, err)
	}
	if c, ok := dest.(serializer.Closer); ok {
		defer func() {
			if closeErr := c.Close(); closeErr != nil {
				slog.Warn("failed to close destination", "error", closeErr)
			}
		}()
	}

	ns := snapshotter.NodeSnapshotter{
		Version:      version,
		Factory:      newFactory(cfg),
		ProbeTimeout: cfg.ProbeTimeout,
		Serializer:   dest,
	}

	slog.Info("collecting snapshot",
		"collector", cfg.Collector,
		"format", cfg.Format,
		"probeTimeout", cfg.ProbeTimeout)

	err = ns.Measure(ctx)

	if cfg.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); werr != nil {
			slog.Warn("failed to write metrics file", "path", cfg.MetricsFile, "error", werr)
		}
	}

	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}
	return nil
}

// resolveConfig layers the config file, the environment and the flags that
// were set explicitly.
func resolveConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String(configFlagName))
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if cmd.IsSet(formatFlagName) {
		f, err := parseOutputFormat(cmd)
		if err != nil {
			return cfg, err
		}
		cfg.Format = f
	}
	if cmd.IsSet(probeTimeoutFlagName) {
		cfg.ProbeTimeout = cmd.Duration(probeTimeoutFlagName)
	}
	if cmd.IsSet(dialTimeoutFlagName) {
		cfg.DialTimeout = cmd.Duration(dialTimeoutFlagName)
	}
	if cmd.IsSet(logLevelFlagName) {
		cfg.LogLevel = cmd.String(logLevelFlagName)
	}

	for flagName, dst := range map[string]*string{
		collectorFlagName:    &cfg.Collector,
		metricsFileFlagName:  &cfg.MetricsFile,
		vendorPathFlagName:   &cfg.VendorPath,
		servicesPathFlagName: &cfg.ServicesPath,
		appsDirFlagName:      &cfg.AppsDir,
		diskPathFlagName:     &cfg.DiskPath,
	} {
		if cmd.IsSet(flagName) {
			*dst = cmd.String(flagName)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
