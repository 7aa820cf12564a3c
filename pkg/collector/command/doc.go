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

// Package command runs the external diagnostic commands that some probes
// depend on (lsusb, xrandr, ifconfig, bluetoothctl).
//
// Probes accept a Runner so their parsing logic can be tested against
// captured output. ExecRunner is the production implementation: it resolves
// the binary from PATH, applies a per-command deadline, and reports failures
// as structured errors (SERVICE_UNAVAILABLE for a missing binary, TIMEOUT,
// or COMMAND_FAILED with the captured stderr).
package command
