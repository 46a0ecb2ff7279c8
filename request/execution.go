// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gogama/asynchttp/failure"
)

// An Execution represents the state of a single Plan dispatch.
//
// When a facade verb is called, an Execution is created for the Plan.
// The Execution is updated as the dispatch progresses (when the
// backend returns a response or a failure) and is handed to event
// handlers at each stage.
//
// Event handlers may set values on an Execution using its SetValue
// method and read them back using the Value method. However, they
// should treat the structure's exported field values as immutable, as
// the execution state is shared with the dispatch logic.
type Execution struct {
	// ID uniquely identifies the execution. It is useful for
	// correlating log lines produced by the same dispatch.
	ID string
	// Plan specifies the HTTP operation being executed. It is never
	// nil.
	Plan *Plan
	// Backend is the name of the backend executing the plan.
	Backend string
	// Timeout is the network timeout the backend was given. It is
	// zero until the backend is about to be invoked.
	Timeout time.Duration
	// Start is the start time of the execution. It is assigned a
	// non-zero value when the backend is about to be invoked.
	Start time.Time
	// End is the end time of the execution. It contains the zero
	// value until the backend returns.
	End time.Time
	// Response is the response returned by the backend. It is nil if
	// the execution ended in a failure, or has not yet ended.
	Response *Response
	// Err is the classified failure returned by the backend. Whenever
	// Err is non-nil, it has the type *failure.Error.
	Err error
	// data contains arbitrary handler data.
	data context.Context
}

// NewExecution returns a new Execution for p with a fresh ID.
func NewExecution(p *Plan, backend string) *Execution {
	return &Execution{
		ID:      uuid.NewString(),
		Plan:    p,
		Backend: backend,
	}
}

// StatusCode returns the status code of the response. If there is no
// response, 0 is returned.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// Kind returns the failure kind of Err, and false if Err is nil.
func (e *Execution) Kind() (failure.Kind, bool) {
	if e.Err == nil {
		return failure.Generic, false
	}
	return failure.KindOf(e.Err), true
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of type string or any other built-in type.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}
	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}
	return ctx.Value(key)
}
