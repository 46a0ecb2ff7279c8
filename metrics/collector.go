// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogama/asynchttp"
	"github.com/gogama/asynchttp/request"
)

// Namespace prefixes every metric name.
const Namespace = "asynchttp"

// Collector holds the Prometheus metrics for asynchttp executions.
type Collector struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec
}

// New creates the metrics and registers them with reg. If reg is nil,
// the metrics are registered with prometheus.DefaultRegisterer. New
// panics if registration fails.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "requests_total",
				Help:      "Total number of executions by backend, method and outcome",
			},
			[]string{"backend", "method", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "request_duration_seconds",
				Help:      "Execution latency histogram",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~16s
			},
			[]string{"backend", "method"},
		),
		RequestsInFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "requests_in_flight",
				Help:      "Current number of executions in progress",
			},
			[]string{"backend"},
		),
	}
	reg.MustRegister(c.RequestsTotal, c.RequestDuration, c.RequestsInFlight)
	return c
}

// Install adds the collector to g, so it observes the BeforeExecution
// and AfterExecution events of every Client using g.
func (c *Collector) Install(g *asynchttp.HandlerGroup) {
	g.PushBack(asynchttp.BeforeExecution, c)
	g.PushBack(asynchttp.AfterExecution, c)
}

// Handle implements asynchttp.Handler.
func (c *Collector) Handle(evt asynchttp.Event, e *request.Execution) {
	switch evt {
	case asynchttp.BeforeExecution:
		c.RequestsInFlight.WithLabelValues(e.Backend).Inc()
	case asynchttp.AfterExecution:
		c.RequestsInFlight.WithLabelValues(e.Backend).Dec()
		method := e.Plan.Method.String()
		c.RequestsTotal.WithLabelValues(e.Backend, method, Outcome(e)).Inc()
		c.RequestDuration.WithLabelValues(e.Backend, method).Observe(e.Duration().Seconds())
	}
}

// Outcome returns the outcome label for a finished execution: the
// status class ("2xx", "4xx", ...) for a response, or the failure kind
// for an error.
func Outcome(e *request.Execution) string {
	if kind, ok := e.Kind(); ok {
		return kind.String()
	}
	sc := e.StatusCode()
	if sc < 100 || sc > 599 {
		return "other"
	}
	return strconv.Itoa(sc/100) + "xx"
}
