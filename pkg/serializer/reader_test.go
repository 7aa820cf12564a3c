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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type readerConfig struct {
	Collector string   `json:"collector" yaml:"collector"`
	Format    string   `json:"format" yaml:"format"`
	Tags      []string `json:"tags" yaml:"tags"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"CONFIG.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"/etc/hostinv/config.yml", FormatYAML},
		{"config.txt", FormatJSON},
		{"config", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", FormatTable, true},
		{"text", FormatText, true},
		{"unknown", Format("xml"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(tt.format, strings.NewReader("{}"))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"collector":"tcp://10.0.0.1:9000","format":"text","tags":["a","b"]}`},
		{"yaml", FormatYAML, "collector: tcp://10.0.0.1:9000\nformat: text\ntags:\n  - a\n  - b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var cfg readerConfig
			if err := r.Deserialize(&cfg); err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if cfg.Collector != "tcp://10.0.0.1:9000" || cfg.Format != "text" || len(cfg.Tags) != 2 {
				t.Errorf("unexpected config: %+v", cfg)
			}
		})
	}
}

func TestReader_DeserializeInvalid(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var cfg readerConfig
	if err := r.Deserialize(&cfg); err == nil {
		t.Error("expected decode error")
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&readerConfig{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader: %v", err)
	}

	r, err := NewReader(FormatJSON, nil)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if err := r.Deserialize(&readerConfig{}); err == nil {
		t.Error("expected error for nil input")
	}
}

type countingCloser struct {
	strings.Reader
	closed int
}

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestReader_CloseIdempotent(t *testing.T) {
	c := &countingCloser{Reader: *strings.NewReader("{}")}
	r, err := NewReader(FormatJSON, c)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if c.closed != 1 {
		t.Errorf("expected one close, got %d", c.closed)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("collector: 127.0.0.1:9000\nformat: json\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := FromFile[readerConfig](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if cfg.Collector != "127.0.0.1:9000" || cfg.Format != "json" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := FromFile[readerConfig](filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := FromFile[readerConfig](bad); err == nil {
		t.Error("expected error for malformed file")
	}
}
