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

// Package transport delivers a serialized snapshot to the remote collector.
//
// A Sender opens a single TCP connection, writes the payload in full with
// no framing or length prefix, and closes the connection unconditionally.
// No acknowledgement is read and nothing is retried: a dial or write
// failure is returned to the caller as a SERVICE_UNAVAILABLE error.
//
// # Usage
//
//	addr, err := transport.ParseAddress("tcp://192.168.1.17:12345")
//	if err != nil {
//	    return err
//	}
//	s := transport.NewSender(addr, transport.WithDialTimeout(5*time.Second))
//	if err := s.Send(ctx, payload); err != nil {
//	    return err
//	}
//
// Dial and write deadlines default to defaults.TransportDialTimeout and
// defaults.TransportWriteTimeout; the write deadline is shortened to the
// context deadline when that is earlier.
package transport
