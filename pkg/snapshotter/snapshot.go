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

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/NVIDIA/host-inventory/pkg/collector"
	"github.com/NVIDIA/host-inventory/pkg/defaults"
	"github.com/NVIDIA/host-inventory/pkg/errors"
	"github.com/NVIDIA/host-inventory/pkg/header"
	"github.com/NVIDIA/host-inventory/pkg/inventory"
	"github.com/NVIDIA/host-inventory/pkg/serializer"
)

// NodeSnapshotter collects a host inventory snapshot from the current node.
// Probes run one at a time in probe set order, each under its own deadline.
type NodeSnapshotter struct {
	// Version is the tool version recorded in the snapshot metadata.
	Version string

	// Factory is the probe factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Probes overrides the probe set built from Factory.
	Probes []collector.Collector

	// ProbeTimeout bounds each probe. Zero means defaults.ProbeTimeout.
	ProbeTimeout time.Duration

	// Serializer is the snapshot destination. If nil, JSON is written to stdout.
	Serializer serializer.Serializer
}

// Measure collects the snapshot and hands it, complete, to the Serializer.
// Nothing is serialized when collection fails.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap, err := n.Collect(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Collect runs every probe once and assembles the snapshot.
// Absent and degraded probes never abort assembly: their value (nil for
// absent) is recorded under the field name and the cause, if any, becomes a
// diagnostic. A probe that exceeds its deadline is absent unless it returned
// a partial value, which is kept as degraded. A fatal probe,
// or cancellation of ctx, aborts assembly and no snapshot is returned.
func (n *NodeSnapshotter) Collect(ctx context.Context) (*Snapshot, error) {
	probes := n.Probes
	if probes == nil {
		if n.Factory == nil {
			n.Factory = collector.NewDefaultFactory()
		}
		probes = collector.ProbeSet(n.Factory)
	}

	timeout := n.ProbeTimeout
	if timeout <= 0 {
		timeout = defaults.ProbeTimeout
	}

	slog.Debug("starting host snapshot", slog.Int("probes", len(probes)))

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	snap := NewSnapshot()
	snap.Init(header.KindSnapshot, header.APIVersion, n.Version)
	if host, err := os.Hostname(); err == nil {
		snap.Header.Set(header.MetadataSourceNode, host)
	}

	for _, p := range probes {
		res := runProbe(ctx, p, timeout)

		if err := ctx.Err(); err != nil {
			snapshotCollectionTotal.WithLabelValues("canceled").Inc()
			return nil, errors.WrapWithContext(errors.CodeOf(err), "snapshot collection interrupted", err,
				map[string]any{"probe": p.Name()})
		}

		if res.Status == inventory.StatusFatal {
			slog.Error("probe failed",
				slog.String("probe", p.Name()),
				slog.String("error", res.Cause.Error()))
			snapshotCollectionTotal.WithLabelValues("error").Inc()
			return nil, errors.WrapWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("failed to collect %s", p.Name()), res.Cause,
				map[string]any{"probe": p.Name()})
		}

		snap.Fields = append(snap.Fields, Field{Name: p.Name(), Value: res.Value})

		if res.Cause != nil {
			slog.Warn("probe incomplete",
				slog.String("probe", p.Name()),
				slog.String("status", res.Status.String()),
				slog.String("error", res.Cause.Error()))
			snap.Diagnostics = append(snap.Diagnostics, Diagnostic{
				Field:   p.Name(),
				Status:  res.Status,
				Code:    errors.CodeOf(res.Cause),
				Message: res.Cause.Error(),
			})
		}
	}

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotDiagnostics.Set(float64(len(snap.Diagnostics)))

	slog.Debug("snapshot collection complete",
		slog.Int("fields", len(snap.Fields)),
		slog.Int("diagnostics", len(snap.Diagnostics)))

	return snap, nil
}

// runProbe runs one probe under its own deadline. On a deadline overrun the
// partial value of a degraded result is kept with a timeout cause; anything
// else short of present becomes absent. A panic is contained as absent with
// an internal error.
func runProbe(ctx context.Context, p collector.Collector, timeout time.Duration) (res inventory.Result) {
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = inventory.Absent(errors.New(errors.ErrCodeInternal, fmt.Sprintf("probe panicked: %v", r)))
		}
		probeDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())
		probeResultsTotal.WithLabelValues(p.Name(), res.Status.String()).Inc()
	}()

	res = p.Collect(pctx)

	if pctx.Err() != nil && ctx.Err() == nil && res.Status != inventory.StatusPresent {
		cause := errors.WrapWithContext(errors.ErrCodeTimeout, "probe deadline exceeded",
			pctx.Err(), map[string]any{"timeout": timeout.String()})
		if res.Status == inventory.StatusDegraded && res.Value != nil {
			res = inventory.Degraded(res.Value, cause)
		} else {
			res = inventory.Absent(cause)
		}
	}

	slog.Debug("probe finished",
		slog.String("probe", p.Name()),
		slog.String("status", res.Status.String()),
		slog.Duration("duration", time.Since(start)))

	return res
}
