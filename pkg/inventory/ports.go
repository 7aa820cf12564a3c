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
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Port categories, in reporting order.
const (
	PortUSB      = "USB"
	PortHDMI     = "HDMI"
	PortVGA      = "VGA"
	PortEthernet = "Ethernet"
)

// PortGroup is one category of physical ports and its descriptors.
type PortGroup struct {
	Category    string
	Descriptors []string
}

// PhysicalPorts is an ordered mapping from port category to descriptors.
// A category is included only when its underlying query succeeded.
// It serializes as an object whose keys keep insertion order.
type PhysicalPorts []PortGroup

// Get returns the descriptors of a category and whether it is present.
func (p PhysicalPorts) Get(category string) ([]string, bool) {
	for _, g := range p {
		if g.Category == category {
			return g.Descriptors, true
		}
	}
	return nil, false
}

// Categories returns the present categories in order.
func (p PhysicalPorts) Categories() []string {
	out := make([]string, 0, len(p))
	for _, g := range p {
		out = append(out, g.Category)
	}
	return out
}

// MarshalJSON renders the groups as a JSON object in insertion order.
func (p PhysicalPorts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(g.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal port category: %w", err)
		}
		v, err := json.Marshal(nonNil(g.Descriptors))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s descriptors: %w", g.Category, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the groups as a YAML mapping in insertion order.
func (p PhysicalPorts) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, g := range p {
		var v yaml.Node
		if err := v.Encode(nonNil(g.Descriptors)); err != nil {
			return nil, fmt.Errorf("failed to encode %s descriptors: %w", g.Category, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: g.Category},
			&v,
		)
	}
	return node, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
