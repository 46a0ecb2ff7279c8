// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"regexp"

	"github.com/gogama/asynchttp/failure"
)

var uriPattern = regexp.MustCompile(`(?i)^(https?://)?([^/\s]+)(/.*)?$`)

// SplitURI splits uri into a host and a path, for backends whose
// engine must be bound to a host before a request can be made.
//
// The input must have the shape (scheme "://")? authority (path)?,
// where scheme is http or https. The host is the scheme, if present,
// concatenated with the authority. The path is the remainder of the
// input, or "/" if there is none. Query strings and fragments stay
// part of the path.
//
// If uri does not have the required shape, the returned error is an
// Invalid *failure.Error.
func SplitURI(uri string) (host, path string, err error) {
	m := uriPattern.FindStringSubmatch(uri)
	if m == nil {
		return "", "", failure.New(failure.Invalid, "invalid URI format")
	}
	host = m[1] + m[2]
	path = m[3]
	if path == "" {
		path = "/"
	}
	return host, path, nil
}
