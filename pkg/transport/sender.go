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

package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/host-inventory/pkg/defaults"
	"github.com/NVIDIA/host-inventory/pkg/errors"
)

// Scheme is the URI scheme of a collector address.
const Scheme = "tcp"

// Dialer opens stream connections.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Option configures a Sender.
type Option func(*Sender)

// WithDialTimeout sets the connection establishment timeout.
func WithDialTimeout(d time.Duration) Option {
	return func(s *Sender) {
		s.DialTimeout = d
	}
}

// WithWriteTimeout sets the deadline for writing the payload.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Sender) {
		s.WriteTimeout = d
	}
}

// WithDialer sets the dialer used to open the connection.
func WithDialer(d Dialer) Option {
	return func(s *Sender) {
		s.Dialer = d
	}
}

// Sender delivers one payload over one TCP connection: dial, write every
// byte, close. There is no framing, acknowledgement, or retry.
type Sender struct {
	Address      string
	DialTimeout  time.Duration
	WriteTimeout time.Duration
	Dialer       Dialer
}

// NewSender creates a Sender for address (host:port) with default timeouts.
func NewSender(address string, opts ...Option) *Sender {
	s := &Sender{
		Address:      address,
		DialTimeout:  defaults.TransportDialTimeout,
		WriteTimeout: defaults.TransportWriteTimeout,
		Dialer:       &net.Dialer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send dials the collector and writes data in full. The connection is
// closed before Send returns, whether or not the write succeeded.
// A dial failure returns before anything is written.
func (s *Sender) Send(ctx context.Context, data []byte) error {
	dialer := s.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}

	dctx := ctx
	if s.DialTimeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, s.DialTimeout)
		defer cancel()
	}

	conn, err := dialer.DialContext(dctx, "tcp", s.Address)
	if err != nil {
		sendTotal.WithLabelValues("dial_error").Inc()
		return errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to connect to collector", err,
			map[string]any{"address": s.Address})
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			slog.Warn("failed to close collector connection", slog.String("error", cerr.Error()))
		}
	}()

	if deadline, ok := s.writeDeadline(ctx); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			slog.Debug("failed to set write deadline", slog.String("error", err.Error()))
		}
	}

	n, err := conn.Write(data)
	bytesSent.Add(float64(n))
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		sendTotal.WithLabelValues("write_error").Inc()
		return errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to send snapshot", err,
			map[string]any{"address": s.Address, "written": n, "size": len(data)})
	}

	sendTotal.WithLabelValues("success").Inc()
	slog.Debug("snapshot sent",
		slog.String("address", s.Address),
		slog.Int("bytes", n))

	return nil
}

// writeDeadline is the earlier of the write timeout and the ctx deadline.
func (s *Sender) writeDeadline(ctx context.Context) (time.Time, bool) {
	var deadline time.Time
	if s.WriteTimeout > 0 {
		deadline = time.Now().Add(s.WriteTimeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	return deadline, !deadline.IsZero()
}

// ParseAddress validates a collector address given as "tcp://host:port" or
// "host:port" and returns it in host:port form.
func ParseAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "collector address is empty")
	}

	hostport := addr
	if strings.Contains(addr, "://") {
		u, err := url.Parse(addr)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidRequest, "invalid collector address", err)
		}
		if u.Scheme != Scheme {
			return "", errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("unsupported collector scheme %q", u.Scheme))
		}
		hostport = u.Host
	}

	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "invalid collector address", err)
	}
	if host == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "collector host is empty")
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return "", errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid collector port %q", port))
	}

	return net.JoinHostPort(host, port), nil
}
