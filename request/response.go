// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "strings"

// A Response is the result of a successful HTTP operation.
//
// A Response is built once by a backend and never modified afterwards.
// Once returned to the caller, the caller owns it.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers contains the response headers as raw "Name: Value"
	// lines. Whether headers are populated at all depends on the
	// backend; see the backend's capabilities.
	Headers []string
	// Body is the complete response body. It is never nil on a
	// Response returned by a backend, but may be empty.
	Body []byte
}

// Header returns the value of the first header line whose name
// matches name case-insensitively, or the empty string if there is no
// such line.
func (r *Response) Header(name string) string {
	for _, line := range r.Headers {
		n, v, ok := ParseHeader(line)
		if ok && strings.EqualFold(n, name) {
			return v
		}
	}
	return ""
}
