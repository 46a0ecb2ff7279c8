// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality, such as metrics.
//
// All events for one execution fire on the goroutine performing the
// request, in the order returned by Events, before the execution's
// Future is resolved.
type Event int

const (
	// BeforeExecution identifies the event that occurs before the
	// backend is invoked.
	//
	// When Client fires BeforeExecution, the execution's ID, plan
	// and backend name are set, but it has not started.
	BeforeExecution Event = iota
	// AfterResponse identifies the event that occurs after the backend
	// returned a response.
	//
	// When Client fires AfterResponse, the execution's response field
	// is set and its error field is nil. A response with any status
	// code, including 4XX and 5XX, fires AfterResponse.
	AfterResponse
	// AfterFailure identifies the event that occurs after the backend
	// returned a classified failure.
	//
	// When Client fires AfterFailure, the execution's error field is
	// set to a *failure.Error and its response field is nil.
	AfterFailure
	// AfterExecution identifies the event that occurs after the
	// execution ends, regardless of its outcome.
	AfterExecution
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel
	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecution",
	"AfterResponse",
	"AfterFailure",
	"AfterExecution",
}

// Events returns a slice containing all events which can occur in an
// execution, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecution,
		AfterResponse,
		AfterFailure,
		AfterExecution,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
