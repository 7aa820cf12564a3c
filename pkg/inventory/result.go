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
)

// Status is the outcome tag of a probe.
type Status string

const (
	// StatusPresent means the probe produced its value.
	StatusPresent Status = "present"
	// StatusAbsent means no value was obtained; the field is null.
	StatusAbsent Status = "absent"
	// StatusDegraded means a usable value was produced but part of the
	// underlying query failed.
	StatusDegraded Status = "degraded"
	// StatusFatal means an always-available facility failed and the
	// snapshot cannot be completed.
	StatusFatal Status = "fatal"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// Result is the tagged outcome of one probe.
// Value is nil exactly when Status is absent or fatal.
// Cause, when set, records why the value is missing or incomplete.
type Result struct {
	Status Status
	Value  any
	Cause  error
}

// Present returns a successful result.
func Present(v any) Result {
	return Result{Status: StatusPresent, Value: v}
}

// Absent returns a result with no value. cause may be nil when there is
// simply nothing to report.
func Absent(cause error) Result {
	return Result{Status: StatusAbsent, Cause: cause}
}

// Degraded returns a result carrying a value along with the failure that
// made it incomplete.
func Degraded(v any, cause error) Result {
	return Result{Status: StatusDegraded, Value: v, Cause: cause}
}

// Fatal returns a result for an always-available probe whose facility
// failed. A deadline is never fatal: it is reported as absent instead.
func Fatal(err error) Result {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Absent(err)
	}
	return Result{Status: StatusFatal, Cause: err}
}

// Require turns (value, err) from an always-available facility into a
// Result: present on success, fatal (or absent on deadline) on error.
func Require(v any, err error) Result {
	if err != nil {
		return Fatal(err)
	}
	return Present(v)
}
