// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/asynchttp/failure"
)

// A Method is one of the HTTP methods supported by the facade.
type Method string

const (
	GET    Method = "GET"
	PUT    Method = "PUT"
	POST   Method = "POST"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// Methods returns all supported methods in a stable order.
func Methods() []Method {
	return []Method{GET, PUT, POST, PATCH, DELETE}
}

// String returns the method token.
func (m Method) String() string {
	return string(m)
}

// HasBody reports whether requests with method m logically carry a
// body. GET and DELETE requests never do.
func (m Method) HasBody() bool {
	return m == PUT || m == POST || m == PATCH
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case GET, PUT, POST, PATCH, DELETE:
		return true
	default:
		return false
	}
}

// ParseMethod converts s, in any letter case, into a Method.
//
// The returned error is an Invalid *failure.Error if s is not a valid
// HTTP token, or if it is a token but not one of the supported methods.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return "", failure.New(failure.Invalid, "empty method")
	}
	if strings.IndexFunc(s, isNotToken) != -1 {
		return "", failure.Newf(failure.Invalid, "invalid method %q", s)
	}
	m := Method(strings.ToUpper(s))
	if !m.Valid() {
		return "", failure.Newf(failure.Invalid, "unsupported HTTP method: %s", s)
	}
	return m, nil
}

// A Plan contains one logical HTTP operation for dispatch by a backend.
//
// The field structure of Plan mirrors the facade's verb parameters:
// a method, a target URI given as an unparsed string, an optional body,
// and a sequence of raw header lines.
type Plan struct {
	// Method specifies the HTTP method.
	Method Method
	// URI is the target URI, exactly as given by the caller. Backends
	// which accept a full URI pass it on directly; others resolve it
	// with SplitURI.
	URI string
	// Body is the pre-buffered request body to be sent. It is always
	// nil for methods which do not carry a body (GET and DELETE).
	Body []byte
	// Header contains raw header lines of the form "Name: Value".
	// Lines are not validated here; duplicates are allowed and order
	// is preserved.
	Header []string
}

// NewPlan returns a new Plan given a method, URI, optional body, and
// optional raw header lines.
//
// The body is dropped for methods which do not carry one. The header
// slice is copied so the caller may reuse it.
//
// An error is returned only if method is not one of the supported
// methods.
func NewPlan(method Method, uri string, body []byte, header ...string) (*Plan, error) {
	if !method.Valid() {
		return nil, failure.Newf(failure.Invalid, "unsupported HTTP method: %s", string(method))
	}
	if !method.HasBody() {
		body = nil
	}
	var h []string
	if len(header) > 0 {
		h = make([]string, len(header))
		copy(h, header)
	}
	return &Plan{
		Method: method,
		URI:    uri,
		Body:   body,
		Header: h,
	}, nil
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
