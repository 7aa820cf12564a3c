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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bytesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hostinv_transport_bytes_sent_total",
			Help: "Total number of payload bytes written to the collector",
		},
	)

	sendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostinv_transport_send_total",
			Help: "Snapshot delivery attempts by outcome",
		},
		[]string{"status"}, // success, dial_error, write_error
	)
)
