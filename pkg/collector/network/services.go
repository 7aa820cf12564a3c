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

package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/NVIDIA/host-inventory/pkg/collector/file"
)

// DefaultServicesPath is the system service-name table.
const DefaultServicesPath = "/etc/services"

// ErrUnknownService is returned when a port has no registered service name.
var ErrUnknownService = errors.New("unknown service")

// ServiceResolver maps a port number to its well-known service name.
type ServiceResolver interface {
	// LookupPort resolves port for proto ("tcp", "udp"). An empty proto
	// matches any protocol.
	LookupPort(proto string, port uint32) (string, error)
}

// ServiceFile resolves service names from a services(5) table.
// The table is loaded on first lookup.
type ServiceFile struct {
	Path   string
	Parser *file.Parser

	once    sync.Once
	byProto map[string]string
	byPort  map[uint32]string
	loadErr error
}

// NewServiceFile returns a resolver for the system services table.
// An empty path means DefaultServicesPath.
func NewServiceFile(path string) *ServiceFile {
	if path == "" {
		path = DefaultServicesPath
	}
	return &ServiceFile{Path: path}
}

// LookupPort implements ServiceResolver.
func (s *ServiceFile) LookupPort(proto string, port uint32) (string, error) {
	s.once.Do(s.load)
	if s.loadErr != nil {
		return "", s.loadErr
	}

	if proto != "" {
		if name, ok := s.byProto[serviceKey(proto, port)]; ok {
			return name, nil
		}
	}
	if name, ok := s.byPort[port]; ok && proto == "" {
		return name, nil
	}
	return "", fmt.Errorf("port %d/%s: %w", port, proto, ErrUnknownService)
}

func (s *ServiceFile) load() {
	p := s.Parser
	if p == nil {
		p = file.NewParser(file.WithStripInlineComments(true))
	}

	lines, err := p.GetLines(s.Path)
	if err != nil {
		s.loadErr = fmt.Errorf("failed to load service table: %w", err)
		return
	}

	s.byProto = make(map[string]string, len(lines))
	s.byPort = make(map[uint32]string, len(lines))

	for _, line := range lines {
		name, port, proto, ok := parseServiceLine(line)
		if !ok {
			continue
		}
		// First entry wins, as with getservbyport.
		key := serviceKey(proto, port)
		if _, dup := s.byProto[key]; !dup {
			s.byProto[key] = name
		}
		if _, dup := s.byPort[port]; !dup {
			s.byPort[port] = name
		}
	}
}

// parseServiceLine parses "name port/proto [aliases...]".
func parseServiceLine(line string) (name string, port uint32, proto string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, "", false
	}

	portStr, proto, found := strings.Cut(fields[1], "/")
	if !found || proto == "" {
		return "", 0, "", false
	}

	n, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, "", false
	}

	return fields[0], uint32(n), strings.ToLower(proto), true
}

func serviceKey(proto string, port uint32) string {
	return strconv.FormatUint(uint64(port), 10) + "/" + proto
}
