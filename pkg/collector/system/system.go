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

package system

import (
	"context"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

// IdentityFunc returns the platform identity tuple.
type IdentityFunc func(ctx context.Context) (inventory.SystemIdentity, error)

// Collector reports the platform identity (kernel name, host name, release,
// version, machine).
type Collector struct {
	Identity IdentityFunc
}

// NewCollector returns a collector reading the host identity.
func NewCollector() *Collector {
	return &Collector{Identity: HostIdentity}
}

// Name implements collector.Collector.
func (c *Collector) Name() string {
	return inventory.FieldSystem
}

// Collect returns the identity tuple. The facility is always expected to
// be available, so a failure is fatal.
func (c *Collector) Collect(ctx context.Context) inventory.Result {
	id, err := c.Identity(ctx)
	return inventory.Require(id, err)
}
