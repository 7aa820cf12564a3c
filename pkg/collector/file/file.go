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

package file

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Options for configuring the Parser.
type Option func(*Parser)

// Parser reads line-oriented system files (identity files, service tables,
// descriptors) with customizable settings.
type Parser struct {
	fsys          fs.FS
	delimiter     string
	maxSize       int
	skipComments  bool
	inlineComment bool
}

// WithFS sets the filesystem the parser reads from. Paths are then resolved
// relative to fsys using fs.ReadFile semantics. Default reads the host
// filesystem with absolute paths.
func WithFS(fsys fs.FS) Option {
	return func(p *Parser) {
		p.fsys = fsys
	}
}

// WithDelimiter sets the delimiter used to split entries in the file.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip lines starting with '#'.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithStripInlineComments sets whether text following a '#' is removed from
// each line before it is returned. Default is false.
func WithStripInlineComments(strip bool) Option {
	return func(p *Parser) {
		p.inlineComment = strip
	}
}

// NewParser creates a new file parser with the provided options.
// Default settings: host filesystem, newline delimiter, 1MB max file size,
// comment lines skipped.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      1 << 20, // 1MB default
		skipComments: true,
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetLines reads the file at the given path and splits its content into
// trimmed, non-empty lines based on the configured delimiter.
// An error is returned if the file cannot be read, exceeds the maximum size,
// or contains invalid UTF-8 content. Read errors wrap the underlying
// fs error so callers can test for fs.ErrNotExist.
func (p *Parser) GetLines(path string) ([]string, error) {
	b, err := p.read(path)
	if err != nil {
		return nil, err
	}
	return p.split(path, b), nil
}

// FirstLine returns the first line GetLines would return.
// An empty file yields an empty string and no error.
func (p *Parser) FirstLine(path string) (string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}

func (p *Parser) read(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	var b []byte
	var err error
	if p.fsys != nil {
		b, err = fs.ReadFile(p.fsys, path)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	return b, nil
}

func (p *Parser) split(path string, b []byte) []string {
	parts := strings.Split(string(b), p.delimiter)

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if p.inlineComment {
			part, _, _ = strings.Cut(part, "#")
		}

		cleanPart := strings.TrimSpace(part)
		if cleanPart == "" {
			slog.Debug("skipping empty line from file", slog.String("path", path))
			continue
		}

		if p.skipComments && strings.HasPrefix(cleanPart, "#") {
			continue
		}

		result = append(result, cleanPart)
	}

	return result
}
