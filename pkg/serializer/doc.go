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

// Package serializer encodes inventory snapshots and delivers them to a
// destination.
//
// # Formats
//
// JSON:
//   - Indented, keys in the order produced by the value's MarshalJSON
//
// YAML:
//   - Two-space indentation via gopkg.in/yaml.v3
//
// Text:
//   - A single-line debug rendering, e.g. {"vendor": "Acme", "cpu_count": 8}
//   - Key order follows the value's YAML form
//
// Table:
//   - FIELD/VALUE rows with flattened, sorted keys
//   - Write-only
//
// Every format is deterministic: equal inputs produce identical bytes.
//
// # Destinations
//
// NewDestination picks the Serializer from a URI:
//
//	s, err := serializer.NewDestination(serializer.FormatText, "tcp://192.168.1.17:12345")
//	if err != nil {
//	    return err
//	}
//	if c, ok := s.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	return s.Serialize(ctx, snap)
//
// "" and "-" select stdout, "tcp://host:port" selects a TCPWriter and any
// other value is a file path. A TCPWriter encodes before dialing, so an
// encoding failure never opens a connection.
//
// # Decoding
//
// FromFile loads JSON or YAML into any type, picking the format from the
// file extension:
//
//	cfg, err := serializer.FromFile[config.File]("/etc/hostinv/config.yaml")
package serializer
