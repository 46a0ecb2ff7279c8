// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core value types exchanged between the
asynchttp facade and its backends: Plan (describes one HTTP operation),
Response (describes its result), and Execution (describes the state of
a Plan's dispatch).

A Plan is a transient parameter bundle. Its header lines are kept
exactly as the caller gave them, in the raw "Name: Value" wire form,
with no structured parsing: duplicates are allowed and order is
preserved.

	p, err := request.NewPlan(request.POST, "http://localhost:8080/test",
		[]byte(`{"key":"value"}`), "Content-Type: application/json")

Backends that need a structured view of a header line use ParseHeader,
and backends whose engine must be bound to a host before a request can
be made use SplitURI to separate the host from the path.

A Response is immutable once a backend has built it, and is owned by
the caller once it has been returned.

An Execution is created for every dispatched Plan and handed to event
handlers as the dispatch progresses. You will typically not allocate
Execution instances yourself.
*/
package request
