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

// Package units converts raw resource quantities into reporting units.
package units

// GiB is the number of bytes in one binary gigabyte.
const GiB = 1 << 30

// BytesToGB converts a byte count into gigabytes (1024^3 bytes).
func BytesToGB(b uint64) float64 {
	return float64(b) / GiB
}
