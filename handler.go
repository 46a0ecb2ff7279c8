// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

import (
	"github.com/gogama/asynchttp/request"
)

// A Handler observes an execution as it passes through the lifecycle
// events a Client fires.
//
// Handle is called on the goroutine performing the request. A Client
// may run many executions at once, so a Handler shared by a Client
// must be safe for concurrent use. Handlers may annotate the execution
// with SetValue but must not modify its other fields.
type Handler interface {
	Handle(Event, *request.Execution)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(Event, *request.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *request.Execution) {
	f(evt, e)
}

// A HandlerGroup holds one ordered chain of handlers per event. The
// zero value is an empty group ready to use. Install a group in a
// Client with WithHandlers; a group must not be modified once a Client
// using it has started requests.
type HandlerGroup struct {
	chains [numEvents][]Handler
}

// PushBack appends h to the chain for evt. It panics if h is nil or
// evt is not one of the values returned by Events.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("asynchttp: nil handler")
	}
	if evt < 0 || evt >= eventSentinel {
		panic("asynchttp: unknown event")
	}
	g.chains[evt] = append(g.chains[evt], h)
}

// run calls every handler in the chain for evt. A panicking handler
// does not stop the chain: the panic value is passed to recovered, if
// non-nil, and the next handler runs.
func (g *HandlerGroup) run(evt Event, e *request.Execution, recovered func(v interface{})) {
	for _, h := range g.chains[evt] {
		handle(h, evt, e, recovered)
	}
}

func handle(h Handler, evt Event, e *request.Execution, recovered func(v interface{})) {
	defer func() {
		if r := recover(); r != nil && recovered != nil {
			recovered(r)
		}
	}()
	h.Handle(evt, e)
}
