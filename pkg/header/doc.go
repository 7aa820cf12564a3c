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

// Package header provides the envelope carried by every hostinv document.
//
// A Header identifies what a document is (Kind), which schema it follows
// (APIVersion), and carries free-form string metadata such as the collection
// timestamp, tool version, a unique snapshot id, and the source node name.
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindSnapshot, header.APIVersion, version)
//	h.Set(header.MetadataSourceNode, hostname)
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "apiVersion": "hostinv.dgxc.io/v1",
//	  "kind": "Snapshot",
//	  "metadata": {
//	    "snapshot-id": "3f0c...",
//	    "source-node": "host-a",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v0.1.0"
//	  }
//	}
package header
