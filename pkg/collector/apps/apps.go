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

package apps

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

const (
	// DefaultDir is the freedesktop application descriptor directory.
	DefaultDir = "/usr/share/applications"

	descriptorExt = ".desktop"
	namePrefix    = "Name="
)

// Collector lists installed applications from desktop entry files.
type Collector struct {
	// FS is the filesystem holding Dir.
	FS fs.FS
	// Dir is the descriptor directory within FS.
	Dir string
}

// NewCollector returns a collector over dir on the host filesystem.
// An empty dir means DefaultDir.
func NewCollector(dir string) *Collector {
	if dir == "" {
		dir = DefaultDir
	}
	rel := strings.TrimPrefix(path.Clean("/"+dir), "/")
	if rel == "" {
		rel = "."
	}
	return &Collector{FS: os.DirFS("/"), Dir: rel}
}

// Name implements collector.Collector.
func (c *Collector) Name() string {
	return inventory.FieldInstalledApps
}

// Collect always yields a sequence. A missing directory is an empty
// sequence; any other directory error, or the context ending mid-scan,
// yields the names found so far as a degraded sequence.
// Descriptors that cannot be read or carry no Name= line are skipped.
// Symlinked descriptors are followed.
func (c *Collector) Collect(ctx context.Context) inventory.Result {
	entries, err := fs.ReadDir(c.FS, c.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return inventory.Present([]string{})
		}
		return inventory.Degraded([]string{}, fmt.Errorf("failed to read %s: %w", c.Dir, err))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return inventory.Degraded(names, fmt.Errorf("listing %s interrupted: %w", c.Dir, err))
		}
		if !strings.HasSuffix(e.Name(), descriptorExt) {
			continue
		}
		if !e.Type().IsRegular() {
			info, err := fs.Stat(c.FS, path.Join(c.Dir, e.Name()))
			if err != nil || info.IsDir() {
				continue
			}
		}

		name, ok, err := c.displayName(e.Name())
		if err != nil {
			slog.Debug("skipping unreadable descriptor",
				slog.String("file", e.Name()),
				slog.String("error", err.Error()))
			continue
		}
		if ok {
			names = append(names, name)
		}
	}

	return inventory.Present(names)
}

// displayName returns the value of the first Name= line of a descriptor.
func (c *Collector) displayName(file string) (string, bool, error) {
	f, err := c.FS.Open(path.Join(c.Dir, file))
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	// Lines have no length limit.
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if strings.HasPrefix(line, namePrefix) {
			return strings.TrimSpace(line[len(namePrefix):]), true, nil
		}
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
	}
}
