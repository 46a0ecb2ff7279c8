// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package echoserver implements the companion HTTP server used to
// exercise asynchttp backends end to end. It answers on four routes:
//
//	/test     any method; echoes the JSON body under "received", 201 for POST
//	/headers  echoes x-* and another-* request headers, lower-cased
//	/echo     echoes the JSON body under "received"
//	/slow     answers after a configurable delay
//
// Any other path yields a JSON 404. A request body which is empty or
// not valid JSON is echoed as an empty object.
package echoserver
