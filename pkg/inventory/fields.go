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

// Snapshot field names, in collection order.
const (
	FieldPCManufacturer   = "pc-manufacturer"
	FieldBluetoothDevice  = "bluetooth-device"
	FieldPhysicalPorts    = "physical-ports"
	FieldSystem           = "system"
	FieldCPUCount         = "cpu-count"
	FieldPhysicalCores    = "physical-cores"
	FieldCPUUsagePerCore  = "cpu-usage-per-core"
	FieldTotalCPUUsage    = "total-cpu-usage"
	FieldMemory           = "memory"
	FieldMemoryUsed       = "memory-used"
	FieldMemoryFree       = "memory-free"
	FieldMemoryAvailable  = "memory-available"
	FieldMemoryPercentage = "memory-percentage"
	FieldDiskUsage        = "disk-usage"
	FieldDiskUsed         = "disk-used"
	FieldDiskFree         = "disk-free"
	FieldDiskPercentage   = "disk-percentage"
	FieldRunningProcesses = "running-processes"
	FieldOpenPorts        = "open-ports"
	FieldInstalledApps    = "installed-apps"
)

// FieldNames lists every snapshot field in collection order.
var FieldNames = []string{
	FieldPCManufacturer,
	FieldBluetoothDevice,
	FieldPhysicalPorts,
	FieldSystem,
	FieldCPUCount,
	FieldPhysicalCores,
	FieldCPUUsagePerCore,
	FieldTotalCPUUsage,
	FieldMemory,
	FieldMemoryUsed,
	FieldMemoryFree,
	FieldMemoryAvailable,
	FieldMemoryPercentage,
	FieldDiskUsage,
	FieldDiskUsed,
	FieldDiskFree,
	FieldDiskPercentage,
	FieldRunningProcesses,
	FieldOpenPorts,
	FieldInstalledApps,
}
