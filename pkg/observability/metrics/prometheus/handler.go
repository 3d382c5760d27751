/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where NewServer exposes the metrics.
const MetricsPath = "/metrics"

// NewHandler returns the Prometheus formatted /metrics handler.
func NewHandler() http.Handler {
	return promhttp.HandlerFor(prometheus.DefaultGatherer,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
}

// NewServer returns an HTTP server exposing the metrics handler on addr.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, NewHandler())

	return &http.Server{Addr: addr, Handler: mux} //nolint:gosec
}
