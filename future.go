// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

import (
	"context"

	"github.com/gogama/asynchttp/request"
)

// Response is the result of a successful HTTP operation. See
// request.Response.
type Response = request.Response

// A Future is the handle to the eventual result of an HTTP operation
// started by one of the verb methods.
//
// A Future is resolved exactly once, either with a Response or with a
// classified failure of type *failure.Error. It may be waited on any
// number of times, from any number of goroutines.
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func failed(err error) *Future {
	f := newFuture()
	f.resolve(nil, err)
	return f
}

func (f *Future) resolve(resp *Response, err error) {
	f.resp = resp
	f.err = err
	close(f.done)
}

// Wait blocks until the operation completes and returns its result.
// Exactly one of the return values is non-nil.
func (f *Future) Wait() (*Response, error) {
	<-f.done
	return f.resp, f.err
}

// WaitContext is like Wait, but stops waiting when ctx is done and
// returns ctx.Err(). Abandoning the wait does not cancel the operation,
// which runs to completion in the background.
func (f *Future) WaitContext(ctx context.Context) (*Response, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel which is closed when the operation completes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the operation has completed, without blocking.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
