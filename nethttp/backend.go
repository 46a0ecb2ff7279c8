// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nethttp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/asynchttp/failure"
	"github.com/gogama/asynchttp/request"
)

// Name is the name under which the backend is registered.
const Name = "nethttp"

// A Backend performs HTTP requests over one reusable net/http client
// handle.
//
// Backend is not safe for concurrent use. The asynchttp client
// serializes calls to Do under its own lock.
type Backend struct {
	h handle
}

// New returns a Backend with a fresh handle.
func New() *Backend {
	return &Backend{h: newHandle()}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return Name
}

// Close releases the idle connections held by the handle.
func (b *Backend) Close() error {
	b.h.transport.CloseIdleConnections()
	return nil
}

// Do performs one HTTP round trip for p, with the whole operation
// bounded by timeout. A zero timeout means no timeout.
//
// On failure the returned error is a *failure.Error and no Response is
// built. On success the Response has a nil Headers field.
func (b *Backend) Do(p *request.Plan, timeout time.Duration) (*request.Response, error) {
	op := p.Method.String()
	b.h.reset(timeout)

	req, err := http.NewRequestWithContext(context.Background(), op, target(p.URI), nil)
	if err != nil {
		return nil, failure.Wrap(op, p.URI, err)
	}
	if req.URL.Host == "" {
		return nil, failure.Wrap(op, p.URI, failure.New(failure.Invalid, "missing host in URI"))
	}
	if err = appendHeaders(req.Header, p.Header); err != nil {
		return nil, failure.Wrap(op, p.URI, err)
	}
	if p.Method != request.GET && len(p.Body) > 0 {
		body := p.Body
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		req.ContentLength = int64(len(body))
	}

	resp, err := b.h.client.Do(req)
	if err != nil {
		return nil, failure.Wrap(op, p.URI, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var w writeCallback
	if _, err = io.Copy(&w, resp.Body); err != nil {
		return nil, failure.Wrap(op, p.URI, err)
	}

	return &request.Response{
		StatusCode: resp.StatusCode,
		Body:       w.bytes(),
	}, nil
}

// target returns the URI the engine should dial. Like curl, a URI
// without a scheme is assumed to be plain HTTP. A "://" only marks a
// scheme when it precedes the first '/', '?' or '#'.
func target(uri string) string {
	if i := strings.Index(uri, "://"); i > 0 && !strings.ContainsAny(uri[:i], "/?#") {
		return uri
	}
	return "http://" + uri
}

// appendHeaders adds every raw header line to h, in order. A line
// without a colon is passed through as a name with an empty value.
// Names the engine cannot put on the wire are rejected with an
// Invalid failure.
func appendHeaders(h http.Header, lines []string) error {
	for _, line := range lines {
		name, value, ok := request.ParseHeader(line)
		if !ok {
			name = line
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !httpguts.ValidHeaderFieldName(name) {
			return failure.Newf(failure.Invalid, "invalid header field name %q", name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return failure.Newf(failure.Invalid, "invalid header field value for %q", name)
		}
		h.Add(name, value)
	}
	return nil
}

// writeCallback accumulates the response body as it arrives. Each
// chunk handed to Write is appended to one growing buffer.
type writeCallback struct {
	buf bytes.Buffer
}

func (w *writeCallback) Write(chunk []byte) (int, error) {
	return w.buf.Write(chunk)
}

func (w *writeCallback) bytes() []byte {
	b := w.buf.Bytes()
	if b == nil {
		return []byte{}
	}
	return b
}
