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

package command

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/NVIDIA/host-inventory/pkg/defaults"
	"github.com/NVIDIA/host-inventory/pkg/errors"
)

// Runner runs an external diagnostic command and returns its standard output.
// A missing binary, a non-zero exit, and an expired deadline are all errors.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the host with os/exec.
type ExecRunner struct {
	// Timeout bounds each command. Zero means defaults.CommandTimeout.
	Timeout time.Duration
}

// NewExecRunner returns an ExecRunner with the default command timeout.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Timeout: defaults.CommandTimeout}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable,
			fmt.Sprintf("%s not found in PATH", name), err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaults.CommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = &stderr

	start := time.Now()
	out, err := cmd.Output()
	slog.Debug("command finished",
		slog.String("command", name),
		slog.Any("args", args),
		slog.Duration("duration", time.Since(start)),
		slog.Int("bytes", len(out)))

	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
				fmt.Sprintf("%s timed out", name), ctx.Err(),
				map[string]any{"timeout": timeout.String()})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeCommandFailed,
			fmt.Sprintf("failed to execute %s", name), err,
			map[string]any{"stderr": strings.TrimSpace(stderr.String())})
	}

	return out, nil
}
