// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
)

// A Kind is the classification of a failed HTTP operation.
type Kind int

const (
	// Generic indicates any failure which is not one of the more
	// specific kinds. A Generic error carries the lower-level engine's
	// error text in its Code field for diagnostics.
	Generic Kind = iota
	// Connection indicates the transport could not establish, or could
	// not maintain, the connection to the remote host. Refused
	// connections and name resolution failures are connection failures.
	Connection
	// Timeout indicates the operation exceeded the configured timeout.
	//
	// Function Classify returns Timeout if the error or any of its
	// wrapped causes has a Timeout() function that reports true.
	Timeout
	// Invalid indicates malformed input (for example a URI that does
	// not have the required shape) or a response that cannot be
	// interpreted.
	Invalid
)

var kindNames = []string{
	"generic",
	"connection",
	"timeout",
	"invalid",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// An Error is a classified HTTP operation failure.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Op is the HTTP method of the failed operation, if known.
	Op string
	// URI is the target URI of the failed operation, if known.
	URI string
	// Message is a short human-readable description of the failure.
	Message string
	// Code is the native error code or error text reported by the
	// lower-level engine. It is typically only set for Generic errors.
	Code string
	// Err is the underlying cause, which may be nil.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != "" && e.Code != msg {
		msg = msg + " (" + e.Code + ")"
	}
	if e.Op != "" || e.URI != "" {
		return fmt.Sprintf("asynchttp: %s %s %q: %s", e.Kind, e.Op, e.URI, msg)
	}
	return fmt.Sprintf("asynchttp: %s: %s", e.Kind, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the error is a Timeout failure. It lets
// *Error satisfy the informal net.Error timeout convention.
func (e *Error) Timeout() bool {
	return e.Kind == Timeout
}

// New returns a classified error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap classifies err with Classify and wraps it into an *Error for
// the operation op on uri. If err already is an *Error, its kind is
// kept and only the empty operation fields are filled in. A nil err
// produces nil.
func Wrap(op, uri string, err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		c := *e
		if c.Op == "" {
			c.Op = op
		}
		if c.URI == "" {
			c.URI = uri
		}
		return &c
	}
	kind := Classify(err)
	return WrapKind(kind, op, uri, err)
}

// WrapKind wraps err into an *Error of the given kind, bypassing
// Classify. Generic errors record the native error text as Code.
func WrapKind(kind Kind, op, uri string, err error) *Error {
	e := &Error{
		Kind: kind,
		Op:   op,
		URI:  uri,
		Err:  err,
	}
	switch kind {
	case Connection:
		e.Message = "failed to connect to server"
	case Timeout:
		e.Message = "request timed out"
	case Invalid:
		e.Message = "invalid request"
	default:
		e.Message = "request failed"
	}
	if err != nil {
		e.Code = err.Error()
	}
	return e
}

// Classify returns the failure kind of the given raw error. In
// assessing the kind, Classify looks at wrapped cause errors contained
// within err, not just err itself.
//
// A nil error is classified as Generic; callers should not classify
// nil errors.
func Classify(err error) Kind {
	if err == nil {
		return Generic
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return Connection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return Connection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return Connection
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op == "parse" {
		return Invalid
	}
	var invalidHost url.InvalidHostError
	if errors.As(err, &invalidHost) {
		return Invalid
	}
	var escapeErr url.EscapeError
	if errors.As(err, &escapeErr) {
		return Invalid
	}
	return Generic
}

// KindOf returns the kind of err if it is, or wraps, an *Error. For
// any other non-nil error it returns Classify(err).
func KindOf(err error) Kind {
	return Classify(err)
}

// IsConnection reports whether err is a Connection failure.
func IsConnection(err error) bool {
	return is(err, Connection)
}

// IsTimeout reports whether err is a Timeout failure.
func IsTimeout(err error) bool {
	return is(err, Timeout)
}

// IsInvalid reports whether err is an Invalid failure.
func IsInvalid(err error) bool {
	return is(err, Invalid)
}

// IsGeneric reports whether err is a Generic failure.
func IsGeneric(err error) bool {
	return is(err, Generic)
}

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

type hasTimeout interface {
	Timeout() bool
}
