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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Probes use CodeOf to classify the cause of an absent facet so the snapshot
// diagnostics carry a stable code rather than free-form text:
//
//	code := errors.CodeOf(err) // NOT_FOUND, TIMEOUT, COMMAND_FAILED, ...
//
// Fatal paths wrap their cause:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to connect to collector",
//	    cause,
//	    map[string]any{"address": addr},
//	)
package errors
