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

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/NVIDIA/host-inventory/pkg/defaults"
	"github.com/NVIDIA/host-inventory/pkg/errors"
	"github.com/NVIDIA/host-inventory/pkg/logging"
	"github.com/NVIDIA/host-inventory/pkg/serializer"
	"github.com/NVIDIA/host-inventory/pkg/transport"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig       = "HOSTINV_CONFIG"
	EnvCollector    = "HOSTINV_COLLECTOR"
	EnvFormat       = "HOSTINV_FORMAT"
	EnvProbeTimeout = "HOSTINV_PROBE_TIMEOUT"
	EnvDialTimeout  = "HOSTINV_DIAL_TIMEOUT"
	EnvMetricsFile  = "HOSTINV_METRICS_FILE"
	EnvVendorPath   = "HOSTINV_VENDOR_PATH"
	EnvServicesPath = "HOSTINV_SERVICES_PATH"
	EnvAppsDir      = "HOSTINV_APPS_DIR"
	EnvDiskPath     = "HOSTINV_DISK_PATH"
)

// Config is the resolved runtime configuration of a snapshot run.
// Empty path fields leave the probe defaults in place.
type Config struct {
	Collector    string
	Format       serializer.Format
	ProbeTimeout time.Duration
	DialTimeout  time.Duration
	MetricsFile  string
	LogLevel     string

	VendorPath   string
	ServicesPath string
	AppsDir      string
	DiskPath     string
}

// File is the on-disk form of Config, in YAML or JSON.
type File struct {
	Collector    string `json:"collector,omitempty" yaml:"collector,omitempty"`
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`
	ProbeTimeout string `json:"probeTimeout,omitempty" yaml:"probeTimeout,omitempty"`
	DialTimeout  string `json:"dialTimeout,omitempty" yaml:"dialTimeout,omitempty"`
	MetricsFile  string `json:"metricsFile,omitempty" yaml:"metricsFile,omitempty"`
	LogLevel     string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	Paths        Paths  `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// Paths overrides host locations read by the probes.
type Paths struct {
	Vendor   string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Services string `json:"services,omitempty" yaml:"services,omitempty"`
	Apps     string `json:"apps,omitempty" yaml:"apps,omitempty"`
	Disk     string `json:"disk,omitempty" yaml:"disk,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Collector:    transport.Scheme + "://" + defaults.CollectorAddress,
		Format:       serializer.FormatJSON,
		ProbeTimeout: defaults.ProbeTimeout,
		DialTimeout:  defaults.TransportDialTimeout,
		LogLevel:     "info",
	}
}

// Load returns the defaults overlaid with the config file at path.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := serializer.FromFile[File](path)
	if err != nil {
		return cfg, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to load config file", err,
			map[string]any{"path": path})
	}
	if err := cfg.apply(f); err != nil {
		return cfg, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid config file", err,
			map[string]any{"path": path})
	}

	slog.Debug("loaded config file", "path", path)
	return cfg, nil
}

func (c *Config) apply(f *File) error {
	setString(&c.Collector, f.Collector)
	setString(&c.MetricsFile, f.MetricsFile)
	setString(&c.LogLevel, f.LogLevel)
	setString(&c.VendorPath, f.Paths.Vendor)
	setString(&c.ServicesPath, f.Paths.Services)
	setString(&c.AppsDir, f.Paths.Apps)
	setString(&c.DiskPath, f.Paths.Disk)

	if f.Format != "" {
		c.Format = serializer.Format(strings.ToLower(f.Format))
	}
	if err := setDuration(&c.ProbeTimeout, "probeTimeout", f.ProbeTimeout); err != nil {
		return err
	}
	return setDuration(&c.DialTimeout, "dialTimeout", f.DialTimeout)
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays HOSTINV_* variables and LOG_LEVEL onto c.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	f := &File{
		Collector:    get(EnvCollector),
		Format:       get(EnvFormat),
		ProbeTimeout: get(EnvProbeTimeout),
		DialTimeout:  get(EnvDialTimeout),
		MetricsFile:  get(EnvMetricsFile),
		LogLevel:     get(logging.EnvLogLevel),
		Paths: Paths{
			Vendor:   get(EnvVendorPath),
			Services: get(EnvServicesPath),
			Apps:     get(EnvAppsDir),
			Disk:     get(EnvDiskPath),
		},
	}
	if err := c.apply(f); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid environment", err)
	}
	return nil
}

// Validate checks that c describes a runnable snapshot.
func (c Config) Validate() error {
	if _, err := serializer.ParseFormat(string(c.Format)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid format", err)
	}
	if c.ProbeTimeout <= 0 {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("probe timeout must be positive, got %s", c.ProbeTimeout))
	}
	if c.DialTimeout <= 0 {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("dial timeout must be positive, got %s", c.DialTimeout))
	}
	if strings.HasPrefix(c.Collector, transport.Scheme+"://") {
		if _, err := transport.ParseAddress(c.Collector); err != nil {
			return err
		}
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process
// environment without overriding variables already set. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = d
	return nil
}
