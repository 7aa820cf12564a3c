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

// Package network provides the open port probe.
//
// The probe reads the socket table through a ConnectionSource (gopsutil by
// default), keeps sockets in LISTEN state, and resolves each port with a
// ServiceResolver. ServiceFile implements the resolver over a services(5)
// table read with the collector file parser.
package network
