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
	"context"

	"github.com/NVIDIA/host-inventory/pkg/transport"
)

// TCPWriter serializes data and delivers it as a single TCP payload.
type TCPWriter struct {
	Sender *transport.Sender
	Format Format
}

// NewTCPWriter creates a TCPWriter sending to address in the given format.
func NewTCPWriter(format Format, address string, opts ...transport.Option) *TCPWriter {
	return &TCPWriter{
		Sender: transport.NewSender(address, opts...),
		Format: knownOrJSON(format),
	}
}

// Serialize encodes data and sends it. Encoding failures are returned
// before any connection is attempted.
func (w *TCPWriter) Serialize(ctx context.Context, data any) error {
	b, err := Marshal(w.Format, data)
	if err != nil {
		return err
	}
	return w.Sender.Send(ctx, b)
}
