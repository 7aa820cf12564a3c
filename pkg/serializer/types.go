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
	"strings"

	"github.com/NVIDIA/host-inventory/pkg/errors"
	"github.com/NVIDIA/host-inventory/pkg/transport"
)

// Serializer is an interface for serializing snapshot data.
//
// The context parameter bounds I/O performed by implementations that
// deliver data over the network.
type Serializer interface {
	Serialize(ctx context.Context, snapshot any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// StdoutURI selects standard output as a destination.
const StdoutURI = "-"

// NewDestination returns a Serializer for the destination uri:
//   - "" or "-" writes to stdout
//   - "tcp://host:port" sends one payload over TCP
//   - anything else is treated as a file path
func NewDestination(format Format, uri string, opts ...transport.Option) (Serializer, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "" || uri == StdoutURI:
		return NewStdoutWriter(format), nil
	case strings.HasPrefix(uri, transport.Scheme+"://"):
		addr, err := transport.ParseAddress(uri)
		if err != nil {
			return nil, err
		}
		return NewTCPWriter(format, addr, opts...), nil
	case strings.Contains(uri, "://"):
		return nil, errors.New(errors.ErrCodeInvalidRequest, "unsupported destination scheme: "+uri)
	default:
		w, err := NewFileWriter(format, uri)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to open destination", err)
		}
		return w, nil
	}
}
