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

package ports

import "strings"

// ParseUSB parses lsusb output. Each line is split on whitespace and the
// tokens from index 5 on (the vendor:product ID and the device description)
// are joined with a single space. Lines with fewer than six tokens are ignored.
//
//	Bus 001 Device 002: ID 8087:0024 Intel Corp. Integrated Rate Matching Hub
//	-> "8087:0024 Intel Corp. Integrated Rate Matching Hub"
func ParseUSB(output string) []string {
	out := []string{}
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}
		out = append(out, strings.Join(fields[5:], " "))
	}
	return out
}

// ParseDisplay parses xrandr output and returns the output names of
// connected connectors whose line contains marker (e.g. "HDMI", "VGA").
// The leading space in " connected" excludes "disconnected" lines.
//
//	HDMI-1 connected primary 1920x1080+0+0 ...
//	-> "HDMI-1"
func ParseDisplay(output, marker string) []string {
	out := []string{}
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, " connected") || !strings.Contains(line, marker) {
			continue
		}
		if name := firstField(line); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ParseEthernet parses ifconfig output and returns the interface token of
// every line carrying both "flags" and "Ethernet". The token is kept as
// printed by ifconfig.
func ParseEthernet(output string) []string {
	out := []string{}
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "flags") || !strings.Contains(line, "Ethernet") {
			continue
		}
		if name := firstField(line); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
