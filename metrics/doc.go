// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics records Prometheus metrics for asynchttp executions.
//
// A Collector is installed into a HandlerGroup and observes every
// execution of the Client built with that group:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	g := &asynchttp.HandlerGroup{}
//	m.Install(g)
//	cl := asynchttp.MustNew("resty", asynchttp.WithHandlers(g))
package metrics
