// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package failure classifies the errors produced by HTTP backends into a
small taxonomy of failure kinds.

Every failure delivered by an asynchttp backend has the type *Error, and
carries one Kind discriminant: Connection, Timeout, Invalid, or Generic.
Use the Is* helpers, or KindOf, to branch on the kind without a type
assertion:

	resp, err := client.Get("http://localhost:8080/test").Wait()
	if failure.IsConnection(err) {
		...
	}

Function Classify maps a raw error returned by a lower-level HTTP engine
onto a Kind by looking at the error and all of its wrapped causes.
*/
package failure
