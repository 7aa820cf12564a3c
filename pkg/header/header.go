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

package header

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the type of hostinv document.
type Kind string

// Valid Kind constants.
const (
	KindSnapshot Kind = "Snapshot"
)

// APIVersion is the schema version of every document hostinv emits.
const APIVersion = "hostinv.dgxc.io/v1"

// Well-known metadata keys.
const (
	MetadataTimestamp  = "timestamp"
	MetadataVersion    = "version"
	MetadataSnapshotID = "snapshot-id"
	MetadataSourceNode = "source-node"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindSnapshot:
		return true
	default:
		return false
	}
}

// Header carries the self-describing envelope of a hostinv document.
// It follows Kubernetes-style conventions with Kind, APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init initializes the Header with the specified kind, apiVersion, and version.
// Metadata is reset and populated with a UTC timestamp, the tool version (when
// not empty), and a fresh snapshot id.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata[MetadataTimestamp] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
	h.Metadata[MetadataSnapshotID] = uuid.NewString()
}

// Set stores a metadata value, initializing the map if needed.
func (h *Header) Set(key, value string) {
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}

// Get returns the metadata value for key, or an empty string.
func (h *Header) Get(key string) string {
	return h.Metadata[key]
}
