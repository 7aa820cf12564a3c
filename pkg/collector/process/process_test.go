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

package process

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

type fakeProc struct {
	name    string
	user    string
	nameErr error
	userErr error
}

type fakeSource struct {
	procs   map[int32]fakeProc
	listErr error
}

func (f *fakeSource) PIDs(_ context.Context) ([]int32, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	pids := make([]int32, 0, len(f.procs))
	for pid := range f.procs {
		pids = append(pids, pid)
	}
	return pids, nil
}

func (f *fakeSource) Name(_ context.Context, pid int32) (string, error) {
	p := f.procs[pid]
	return p.name, p.nameErr
}

func (f *fakeSource) Username(_ context.Context, pid int32) (string, error) {
	p := f.procs[pid]
	return p.user, p.userErr
}

func TestCollector(t *testing.T) {
	src := &fakeSource{procs: map[int32]fakeProc{
		300: {name: "sshd", user: "root"},
		1:   {name: "systemd", user: "root"},
		42:  {nameErr: errors.New("process vanished")},
		7:   {name: "kthreadd", userErr: errors.New("permission denied")},
	}}

	res := (&Collector{Source: src}).Collect(context.Background())
	require.Equal(t, inventory.StatusPresent, res.Status)

	records, ok := res.Value.([]inventory.ProcessRecord)
	require.True(t, ok)
	require.Len(t, records, 3)

	assert.Equal(t, int32(1), records[0].PID)
	assert.Equal(t, "systemd", records[0].Name)
	require.NotNil(t, records[0].Username)
	assert.Equal(t, "root", *records[0].Username)

	assert.Equal(t, int32(7), records[1].PID)
	assert.Nil(t, records[1].Username, "unreadable owner should be null")

	assert.Equal(t, int32(300), records[2].PID)
}

func TestCollectorListFailure(t *testing.T) {
	src := &fakeSource{listErr: errors.New("no /proc")}
	res := (&Collector{Source: src}).Collect(context.Background())

	assert.Equal(t, inventory.StatusAbsent, res.Status)
	assert.Nil(t, res.Value)
	assert.Error(t, res.Cause)
}

func TestCollectorEmpty(t *testing.T) {
	res := (&Collector{Source: &fakeSource{}}).Collect(context.Background())
	assert.Equal(t, inventory.StatusPresent, res.Status)
	assert.Equal(t, []inventory.ProcessRecord{}, res.Value)
}

func TestCollectorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{procs: map[int32]fakeProc{1: {name: "init"}}}
	res := (&Collector{Source: src}).Collect(ctx)
	assert.Equal(t, inventory.StatusAbsent, res.Status)
	assert.ErrorIs(t, res.Cause, context.Canceled)
}

func TestHostSource(t *testing.T) {
	res := NewCollector().Collect(context.Background())
	if res.Status != inventory.StatusPresent {
		t.Skipf("process table not readable here: %v", res.Cause)
	}
	records := res.Value.([]inventory.ProcessRecord)
	assert.NotEmpty(t, records)
}
