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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/host-inventory/pkg/inventory"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

const test1Name = "test1"

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{{Name: test1Name, Value: 123}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(result) != 1 || result[0].Name != test1Name {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeText(t *testing.T) {
	user := "root"
	data := map[string]any{
		"records": []inventory.ProcessRecord{
			{PID: 1, Name: "init", Username: &user},
			{PID: 2, Name: "kthreadd"},
		},
	}

	b, err := Marshal(FormatText, data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got := string(b)
	if strings.Count(got, "\n") != 1 || !strings.HasSuffix(got, "\n") {
		t.Errorf("expected a single line, got %q", got)
	}
	for _, want := range []string{`"init"`, `"root"`, "null", "2"} {
		if !strings.Contains(got, want) {
			t.Errorf("text output %q missing %s", got, want)
		}
	}
}

func TestMarshal_TextKeepsOrder(t *testing.T) {
	ports := inventory.PhysicalPorts{
		{Category: inventory.PortVGA, Descriptors: nil},
		{Category: inventory.PortUSB, Descriptors: []string{"Hub", "Mouse"}},
	}

	b, err := Marshal(FormatText, ports)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"VGA": [], "USB": ["Hub", "Mouse"]}` + "\n"
	if string(b) != want {
		t.Errorf("got %q, want %q", b, want)
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	data := map[string]any{
		"b": []string{"x", "y"},
		"a": map[string]int{"z": 1, "y": 2, "x": 3},
		"c": nil,
	}

	for _, f := range SupportedFormats() {
		t.Run(f, func(t *testing.T) {
			first, err := Marshal(Format(f), data)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			for i := 0; i < 5; i++ {
				next, err := Marshal(Format(f), data)
				if err != nil {
					t.Fatalf("Marshal failed: %v", err)
				}
				if !bytes.Equal(first, next) {
					t.Fatalf("output changed between runs:\n%s\n%s", first, next)
				}
			}
		})
	}
}

func TestMarshal_UnsupportedFormat(t *testing.T) {
	if _, err := Marshal(Format("xml"), "x"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testConfig{Name: "test", Value: 42}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "name", "test", "value", "42"} {
		if !strings.Contains(output, want) {
			t.Errorf("table output missing %q:\n%s", want, output)
		}
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), map[string]string{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_SerializeTable_Nested(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"ports": map[string][]string{"USB": {"Hub"}, "VGA": {}},
		"owner": nil,
	}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"ports.USB.[0]", "Hub", "ports.VGA", "[]", "owner", "<nil>"} {
		if !strings.Contains(output, want) {
			t.Errorf("table output missing %q:\n%s", want, output)
		}
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := writer.Serialize(ctx, "x"); err == nil {
		t.Error("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWriter_EncodeFailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	if err := writer.Serialize(context.Background(), map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("expected error for unencodable value")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no partial output, got %q", buf.String())
	}
}

func TestNewWriter_DefaultsToStdout(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if writer.output != os.Stdout {
		t.Error("expected nil output to default to stdout")
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	writer := NewWriter(Format("bogus"), &bytes.Buffer{})
	if writer.format != FormatJSON {
		t.Errorf("expected unknown format to default to json, got %s", writer.format)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	writer, err := NewFileWriter(FormatYAML, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := writer.Serialize(context.Background(), testConfig{Name: test1Name, Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "name: test1") {
		t.Errorf("unexpected file content: %s", content)
	}
}

func TestNewFileWriter_InvalidPath(t *testing.T) {
	if _, err := NewFileWriter(FormatJSON, "/nonexistent/dir/out.json"); err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestNewFileWriter_KeepsExistingUntilSerialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("previous"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	writer, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	defer writer.Close()

	// Encoding fails before anything is opened.
	if err := writer.Serialize(context.Background(), make(chan int)); err == nil {
		t.Fatal("expected encoding error")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "previous" {
		t.Errorf("existing file was modified: %q", content)
	}
}

func TestNewFileWriter_ParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(parent, nil, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := NewFileWriter(FormatJSON, filepath.Join(parent, "out.json")); err == nil {
		t.Error("expected error when parent is not a directory")
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatText, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}
	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YAML ")
	if err != nil {
		t.Fatalf("ParseFormat failed: %v", err)
	}
	if f != FormatYAML {
		t.Errorf("got %s, want yaml", f)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
