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

package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultConstructors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		res        Result
		wantStatus Status
		wantValue  any
		wantCause  error
	}{
		{"present", Present(42), StatusPresent, 42, nil},
		{"absent no cause", Absent(nil), StatusAbsent, nil, nil},
		{"absent with cause", Absent(boom), StatusAbsent, nil, boom},
		{"degraded", Degraded([]string{}, boom), StatusDegraded, []string{}, boom},
		{"fatal", Fatal(boom), StatusFatal, nil, boom},
		{"require ok", Require("x", nil), StatusPresent, "x", nil},
		{"require err", Require("x", boom), StatusFatal, nil, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.res.Status)
			assert.Equal(t, tt.wantValue, tt.res.Value)
			assert.Equal(t, tt.wantCause, tt.res.Cause)
		})
	}
}

func TestFatalDeadlineIsAbsent(t *testing.T) {
	err := fmt.Errorf("cpu percent: %w", context.DeadlineExceeded)
	res := Fatal(err)
	assert.Equal(t, StatusAbsent, res.Status)
	assert.Nil(t, res.Value)
	assert.ErrorIs(t, res.Cause, context.DeadlineExceeded)

	res = Require(nil, context.Canceled)
	assert.Equal(t, StatusAbsent, res.Status)
}
