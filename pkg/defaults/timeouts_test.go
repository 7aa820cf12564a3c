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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"ProbeTimeout", ProbeTimeout, 1 * time.Second, 60 * time.Second},
		{"CommandTimeout", CommandTimeout, 1 * time.Second, 30 * time.Second},
		{"TransportDialTimeout", TransportDialTimeout, 1 * time.Second, 15 * time.Second},
		{"TransportWriteTimeout", TransportWriteTimeout, 5 * time.Second, 120 * time.Second},
		{"CLISnapshotTimeout", CLISnapshotTimeout, 1 * time.Minute, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestCommandTimeoutLessThanProbe(t *testing.T) {
	// A probe must outlive the commands it runs to be able to report partial results
	if CommandTimeout >= ProbeTimeout {
		t.Errorf("CommandTimeout (%v) should be less than ProbeTimeout (%v)",
			CommandTimeout, ProbeTimeout)
	}
}

func TestSnapshotTimeoutCoversProbes(t *testing.T) {
	if CLISnapshotTimeout < ProbeTimeout {
		t.Errorf("CLISnapshotTimeout (%v) should not be shorter than ProbeTimeout (%v)",
			CLISnapshotTimeout, ProbeTimeout)
	}
}
