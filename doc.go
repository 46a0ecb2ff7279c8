// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package asynchttp provides an asynchronous HTTP client facade with
interchangeable transport backends.

Create a Client for one of the registered backends to begin making
requests. Every verb method returns immediately with a Future; the
request runs on its own goroutine.

	client, err := asynchttp.New("resty")
	...
	f := client.Post("http://localhost:8080/test", []byte(`{"key":"value"}`),
		"Content-Type: application/json")
	...
	resp, err := f.Wait()

Headers are raw "Name: Value" strings, passed in order, and may repeat.

Two backends are available:

• "nethttp" (package nethttp) reuses one net/http client handle for
every request. Requests made through one Client are serialized, and
responses carry a status code and body but no headers.

• "resty" (package restyhttp) binds a new go-resty client to the
target host for every request. Requests may overlap on the network,
responses carry headers, and PUT, POST and PATCH requests default to a
JSON content type.

Any failure is delivered through the Future as a *failure.Error whose
Kind is one of Connection, Timeout, Invalid or Generic. No request is
ever retried:

	resp, err := client.Get("http://localhost:12345/").Wait()
	if failure.IsConnection(err) {
		...
	}

Call sites program against the Executor interface (or one of the
single-method interfaces Getter, Putter, Poster, Patcher, Deleter) and
never depend on which backend is in use.

To observe the dispatch of each request, for example to export metrics
(see package metrics), install a handler into the appropriate handler
chain:

	handlers := &asynchttp.HandlerGroup{}
	handlers.PushBack(asynchttp.AfterFailure, asynchttp.HandlerFunc(
		func(_ asynchttp.Event, e *request.Execution) {
			log.Printf("%s %s failed: %v", e.Plan.Method, e.Plan.URI, e.Err)
		}),
	)
	client, err := asynchttp.New("nethttp", asynchttp.WithHandlers(handlers))
*/
package asynchttp
