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

// UnknownService is reported for a listening port with no service name.
const UnknownService = "unknown"

// ProcessRecord describes one running process.
type ProcessRecord struct {
	PID      int32   `json:"pid" yaml:"pid"`
	Name     string  `json:"name" yaml:"name"`
	Username *string `json:"username" yaml:"username"`
}

// OpenPortRecord describes one socket in listening state.
type OpenPortRecord struct {
	Port    uint32 `json:"port" yaml:"port"`
	Service string `json:"service" yaml:"service"`
}

// SystemIdentity is the platform identity tuple reported by uname.
type SystemIdentity struct {
	System  string `json:"system" yaml:"system"`
	Node    string `json:"node" yaml:"node"`
	Release string `json:"release" yaml:"release"`
	Version string `json:"version" yaml:"version"`
	Machine string `json:"machine" yaml:"machine"`
}
