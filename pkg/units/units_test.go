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

package units

import "testing"

func TestBytesToGB(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want float64
	}{
		{"zero", 0, 0},
		{"one gib", 1 << 30, 1},
		{"half gib", 1 << 29, 0.5},
		{"sixteen gib", 16 << 30, 16},
		{"one byte", 1, 1.0 / (1 << 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesToGB(tt.in); got != tt.want {
				t.Errorf("BytesToGB(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
