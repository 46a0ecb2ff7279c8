// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

import (
	"time"

	"github.com/gogama/asynchttp/failure"
	"github.com/gogama/asynchttp/request"
)

// Getter is the interface that wraps the basic Get method.
//
// Get starts a GET of the specified URI, with the given raw
// "Name: Value" header lines, and immediately returns a Future for the
// result. Client implements the Getter interface.
type Getter interface {
	Get(uri string, headers ...string) *Future
}

// Putter is the interface that wraps the basic Put method.
//
// Put starts a PUT of body to the specified URI and immediately
// returns a Future for the result. Client implements the Putter
// interface.
type Putter interface {
	Put(uri string, body []byte, headers ...string) *Future
}

// Poster is the interface that wraps the basic Post method.
//
// Post starts a POST of body to the specified URI and immediately
// returns a Future for the result. Client implements the Poster
// interface.
type Poster interface {
	Post(uri string, body []byte, headers ...string) *Future
}

// Patcher is the interface that wraps the basic Patch method.
//
// Patch starts a PATCH of body to the specified URI and immediately
// returns a Future for the result. Client implements the Patcher
// interface.
type Patcher interface {
	Patch(uri string, body []byte, headers ...string) *Future
}

// Deleter is the interface that wraps the basic Delete method.
//
// Delete starts a DELETE of the specified URI and immediately returns
// a Future for the result. Client implements the Deleter interface.
type Deleter interface {
	Delete(uri string, headers ...string) *Future
}

// TimeoutSetter is the interface that wraps the SetTimeout and Timeout
// methods.
//
// SetTimeout sets the network timeout applied to requests started
// after the call. Timeout returns the current setting. Both methods
// are synchronous and safe for concurrent use.
type TimeoutSetter interface {
	SetTimeout(d time.Duration)
	Timeout() time.Duration
}

// Executor is the interface that groups the five verb methods and the
// timeout accessors. It is the facade callers program against,
// independent of the backend in use.
type Executor interface {
	Getter
	Putter
	Poster
	Patcher
	Deleter
	TimeoutSetter
}

// Do uses the specified Executor to start an HTTP operation with the
// given method. The body is ignored for methods which do not carry one.
//
// Do is useful when the method is only known at run time, for example
// when it comes from a command line argument.
func Do(x Executor, m request.Method, uri string, body []byte, headers ...string) *Future {
	switch m {
	case request.GET:
		return x.Get(uri, headers...)
	case request.PUT:
		return x.Put(uri, body, headers...)
	case request.POST:
		return x.Post(uri, body, headers...)
	case request.PATCH:
		return x.Patch(uri, body, headers...)
	case request.DELETE:
		return x.Delete(uri, headers...)
	default:
		return failed(failure.Wrap(string(m), uri,
			failure.Newf(failure.Invalid, "unsupported HTTP method: %s", string(m))))
	}
}
