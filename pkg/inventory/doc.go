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

// Package inventory defines the record types and field names that make up a
// host inventory snapshot.
//
// Field values are produced by probes in pkg/collector and bound to the
// names in FieldNames by pkg/snapshotter. Record types carry JSON and YAML
// tags; PhysicalPorts keeps category order when serialized.
package inventory
