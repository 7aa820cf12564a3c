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

package snapshotter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/host-inventory/pkg/errors"
	"github.com/NVIDIA/host-inventory/pkg/header"
	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

// Field binds a probe result value to its snapshot field name.
// A nil Value is the absence marker.
type Field struct {
	Name  string
	Value any
}

// Diagnostic records why a field is absent or incomplete.
type Diagnostic struct {
	Field   string           `json:"field" yaml:"field"`
	Status  inventory.Status `json:"status" yaml:"status"`
	Code    errors.ErrorCode `json:"code" yaml:"code"`
	Message string           `json:"message" yaml:"message"`
}

// NewSnapshot creates an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Fields:      make([]Field, 0, len(inventory.FieldNames)),
		Diagnostics: make([]Diagnostic, 0),
	}
}

// Snapshot is the complete, fixed-shape result of one collection pass.
// Fields keep probe set order; every probe contributes exactly one field.
type Snapshot struct {
	header.Header

	// Fields holds one entry per probe, in probe set order.
	Fields []Field

	// Diagnostics holds the causes of absent or degraded fields.
	Diagnostics []Diagnostic
}

// Value returns the value of a field and whether the field exists.
func (s *Snapshot) Value(name string) (any, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// DiagnosticFor returns the diagnostic recorded for a field, if any.
func (s *Snapshot) DiagnosticFor(name string) (Diagnostic, bool) {
	for _, d := range s.Diagnostics {
		if d.Field == name {
			return d, true
		}
	}
	return Diagnostic{}, false
}

// MarshalJSON renders the snapshot as a versioned document whose "fields"
// object keeps probe set order.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	members := []struct {
		key   string
		value any
	}{
		{"kind", s.Kind},
		{"apiVersion", s.APIVersion},
		{"metadata", s.Metadata},
	}
	for _, m := range members {
		if err := writeMember(&buf, m.key, m.value); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}

	buf.WriteString(`"fields":{`)
	for i, f := range s.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteString("},")

	diags := s.Diagnostics
	if diags == nil {
		diags = []Diagnostic{}
	}
	if err := writeMember(&buf, "diagnostics", diags); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("failed to marshal key %q: %w", key, err)
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// MarshalYAML renders the snapshot as an ordered YAML mapping.
func (s *Snapshot) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	add := func(parent *yaml.Node, key string, value any) error {
		var v yaml.Node
		if err := v.Encode(value); err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		parent.Content = append(parent.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, &v)
		return nil
	}

	if err := add(root, "kind", s.Kind.String()); err != nil {
		return nil, err
	}
	if err := add(root, "apiVersion", s.APIVersion); err != nil {
		return nil, err
	}
	if err := add(root, "metadata", s.Metadata); err != nil {
		return nil, err
	}

	fields := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range s.Fields {
		if err := add(fields, f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "fields"}, fields)

	diags := s.Diagnostics
	if diags == nil {
		diags = []Diagnostic{}
	}
	if err := add(root, "diagnostics", diags); err != nil {
		return nil, err
	}

	return root, nil
}
