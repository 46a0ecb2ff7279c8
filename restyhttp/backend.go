// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restyhttp

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/gogama/asynchttp/failure"
	"github.com/gogama/asynchttp/request"
)

// Name is the name under which the backend is registered.
const Name = "resty"

const jsonContentType = "application/json"

// A Backend performs HTTP requests with a new resty client per request.
// Backend is safe for concurrent use by multiple goroutines.
type Backend struct {
	logger zerolog.Logger
}

// An Option configures a Backend.
type Option func(*Backend)

// WithLogger routes the engine's own warnings and debug output to l.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Backend) {
		b.logger = l
	}
}

// New returns a new Backend.
func New(opts ...Option) *Backend {
	b := &Backend{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return Name
}

// Close does nothing, since the backend holds no engine state between
// requests.
func (b *Backend) Close() error {
	return nil
}

// Do performs one HTTP round trip for p. The connect, response header
// and overall timeouts of the per-request client are all set to
// timeout; a zero timeout means no timeout.
//
// On failure the returned error is a *failure.Error and no Response is
// built.
func (b *Backend) Do(p *request.Plan, timeout time.Duration) (*request.Response, error) {
	op := p.Method.String()
	host, path, err := request.SplitURI(p.URI)
	if err != nil {
		return nil, failure.Wrap(op, p.URI, err)
	}

	c, t := b.newClient(host, timeout)
	defer t.CloseIdleConnections()

	r := c.R()
	for _, line := range p.Header {
		name, value, ok := request.ParseHeader(line)
		if !ok {
			continue
		}
		r.Header.Add(name, value)
	}
	if p.Method.HasBody() {
		if r.Header.Get("Content-Type") == "" {
			r.Header.Set("Content-Type", jsonContentType)
		}
		if len(p.Body) > 0 {
			r.SetBody(p.Body)
		}
	}

	resp, err := r.Execute(op, path)
	if err != nil {
		return nil, failure.WrapKind(classify(err), op, p.URI, err)
	}

	body := resp.Body()
	if body == nil {
		body = []byte{}
	}
	return &request.Response{
		StatusCode: resp.StatusCode(),
		Headers:    request.HeaderLines(resp.Header()),
		Body:       body,
	}, nil
}

// newClient builds a client bound to host. The returned transport is
// owned by the client and must be released by the caller.
func (b *Backend) newClient(host string, timeout time.Duration) (*resty.Client, *http.Transport) {
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	t.TLSHandshakeTimeout = timeout
	t.ResponseHeaderTimeout = timeout

	c := resty.New().
		SetBaseURL(host).
		SetTransport(t).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{b.logger})
	return c, t
}

// classify maps an engine error onto a failure kind. Connection-level
// failures are Connection failures. Failures while reading the
// response, including timeouts, are Timeout failures. Anything else is
// Generic, except malformed input which stays Invalid.
func classify(err error) failure.Kind {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return failure.Connection
	}
	kind := failure.Classify(err)
	if kind == failure.Timeout {
		return failure.Timeout
	}
	if opErr != nil && opErr.Op == "read" {
		return failure.Timeout
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return failure.Timeout
	}
	return kind
}

// restyLogger adapts a zerolog.Logger to the resty.Logger interface.
type restyLogger struct {
	l zerolog.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error().Str("engine", Name).Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn().Str("engine", Name).Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Str("engine", Name).Msgf(format, v...)
}
