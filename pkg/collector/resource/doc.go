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

// Package resource provides the resource utilization probe family: CPU
// counts and utilization, virtual memory, and root filesystem usage.
//
// Each reading is its own probe bound to one snapshot field. Sizes are
// reported in gigabytes (1024^3 bytes). These facilities are expected to be
// always available: a failure other than a deadline is fatal to the
// snapshot.
//
// Statistics come from github.com/shirou/gopsutil/v4 through the Stats
// capability so tests can substitute fixed readings.
package resource
