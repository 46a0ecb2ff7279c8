// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

import (
	"sort"
	"time"

	"github.com/gogama/asynchttp/nethttp"
	"github.com/gogama/asynchttp/request"
	"github.com/gogama/asynchttp/restyhttp"
)

// A Backend performs HTTP round trips against one specific underlying
// HTTP engine.
//
// Do must perform one round trip for the plan, bounded by timeout (a
// zero timeout means no timeout), and return either a non-nil Response
// or a non-nil error of type *failure.Error, classified at the point
// the engine returned. Do must release every per-call resource before
// returning, on every path.
type Backend interface {
	Name() string
	Do(p *request.Plan, timeout time.Duration) (*request.Response, error)
	Close() error
}

// A Discipline tells the Client how long to hold its lock while a
// backend performs a round trip.
type Discipline int

const (
	// Serialized backends mutate shared engine state during a round
	// trip. The Client holds its lock for the whole round trip, so
	// requests are serialized and SetTimeout blocks until the current
	// request completes.
	Serialized Discipline = iota
	// Overlapped backends share no engine state between round trips.
	// The Client holds its lock only to read the timeout, so requests
	// may overlap on the network.
	Overlapped
)

// String returns the name of the discipline.
func (d Discipline) String() string {
	if d == Overlapped {
		return "overlapped"
	}
	return "serialized"
}

// Capabilities describes behavior which differs between backends.
type Capabilities struct {
	// ResponseHeaders is true if the backend populates
	// Response.Headers.
	ResponseHeaders bool
	// ImplicitJSON is true if the backend sends
	// Content-Type: application/json on PUT, POST and PATCH unless the
	// caller specified a Content-Type.
	ImplicitJSON bool
	// DropsMalformedHeaders is true if the backend silently drops
	// header lines containing no colon. Backends without this
	// capability pass such lines to the engine as bare header names.
	DropsMalformedHeaders bool
}

type registration struct {
	discipline Discipline
	caps       Capabilities
	factory    func(o *options) Backend
}

var registry = map[string]registration{
	nethttp.Name: {
		discipline: Serialized,
		factory: func(_ *options) Backend {
			return nethttp.New()
		},
	},
	restyhttp.Name: {
		discipline: Overlapped,
		caps: Capabilities{
			ResponseHeaders:       true,
			ImplicitJSON:          true,
			DropsMalformedHeaders: true,
		},
		factory: func(o *options) Backend {
			return restyhttp.New(restyhttp.WithLogger(o.logger))
		},
	},
}

// DefaultBackend is the name of the backend used when a Config does
// not name one.
const DefaultBackend = nethttp.Name

// Backends returns the names of all backends New accepts, sorted.
func Backends() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
