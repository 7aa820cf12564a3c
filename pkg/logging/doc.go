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

// Package logging configures log/slog for hostinv.
//
// Logs are JSON on stderr and carry the module and version of the binary.
// Debug level adds the source location of each record.
//
// The level comes from the --log-level flag or LOG_LEVEL:
//
//	logging.SetDefaultStructuredLoggerWithLevel("hostinv", version, "debug")
//	slog.Info("snapshot sent", "collector", addr, "bytes", n)
//
// Level names are case-insensitive: debug, info, warn (or warning), error.
// Anything else means info.
//
// NewLogLogger adapts the default handler for APIs that still take a
// *log.Logger.
package logging
