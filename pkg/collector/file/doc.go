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

// Package file provides a line-oriented parser for small system files.
//
// Probes use it to read identity files such as /sys/class/dmi/id/sys_vendor
// and tables such as /etc/services. Content is validated as UTF-8, bounded
// in size, split on a delimiter, trimmed, and filtered for blank and comment
// lines.
//
// # Usage
//
//	p := file.NewParser()
//	vendor, err := p.FirstLine("/sys/class/dmi/id/sys_vendor")
//
// Reading from an fs.FS (tests, chroots):
//
//	p := file.NewParser(file.WithFS(os.DirFS("/etc")), file.WithStripInlineComments(true))
//	lines, err := p.GetLines("services")
//
// # Error Handling
//
// Read errors wrap the underlying error, so callers can distinguish a
// missing file:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // absent
//	}
package file
