// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restyhttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/gogama/asynchttp/failure"
	"github.com/gogama/asynchttp/request"
)

// reflector answers with a JSON summary of the request it received.
func reflector(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("X-Multi", "a")
		w.Header().Add("X-Multi", "b")
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"method":%q,"path":%q,"body":%q,"trace":%q,"bare":%t,"content_type":%q}`,
			r.Method, r.URL.Path, string(body), r.Header.Get("X-Trace"),
			len(r.Header.Values("X-Bare")) > 0, r.Header.Get("Content-Type"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBackend_Do(t *testing.T) {
	srv := reflector(t)
	host := strings.TrimPrefix(srv.URL, "http://")
	b := New()
	assert.Equal(t, "resty", b.Name())
	assert.NoError(t, b.Close())

	t.Run("POST", func(t *testing.T) {
		p := &request.Plan{
			Method: request.POST,
			URI:    host + "/a/b",
			Body:   []byte(`{"k":"v"}`),
			Header: []string{"X-Trace: 123", "X-Bare"},
		}
		resp, err := b.Do(p, time.Second)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, "POST", gjson.GetBytes(resp.Body, "method").String())
		assert.Equal(t, "/a/b", gjson.GetBytes(resp.Body, "path").String())
		assert.Equal(t, `{"k":"v"}`, gjson.GetBytes(resp.Body, "body").String())
		assert.Equal(t, "123", gjson.GetBytes(resp.Body, "trace").String())
		assert.False(t, gjson.GetBytes(resp.Body, "bare").Bool())
		assert.Equal(t, "application/json", gjson.GetBytes(resp.Body, "content_type").String())

		assert.Equal(t, "application/json", resp.Header("Content-Type"))
		assert.Contains(t, resp.Headers, "X-Multi: a")
		assert.Contains(t, resp.Headers, "X-Multi: b")
	})
	t.Run("explicit content type kept", func(t *testing.T) {
		p := &request.Plan{
			Method: request.PUT,
			URI:    srv.URL + "/",
			Body:   []byte("plain"),
			Header: []string{"Content-Type: text/plain"},
		}
		resp, err := b.Do(p, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "text/plain", gjson.GetBytes(resp.Body, "content_type").String())
		assert.Equal(t, "plain", gjson.GetBytes(resp.Body, "body").String())
	})
	t.Run("GET has no implicit content type", func(t *testing.T) {
		resp, err := b.Do(&request.Plan{Method: request.GET, URI: host}, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "", gjson.GetBytes(resp.Body, "content_type").String())
		assert.Equal(t, "/", gjson.GetBytes(resp.Body, "path").String())
	})
}

func TestBackend_Do_Errors(t *testing.T) {
	b := New()
	t.Run("bad URI", func(t *testing.T) {
		resp, err := b.Do(&request.Plan{Method: request.GET, URI: "/only/a/path"}, time.Second)
		assert.Nil(t, resp)
		var ferr *failure.Error
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, failure.Invalid, ferr.Kind)
		assert.Equal(t, "GET", ferr.Op)
		assert.Equal(t, "/only/a/path", ferr.URI)
		assert.Equal(t, "invalid URI format", ferr.Message)
	})
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		uri := srv.URL
		srv.Close()
		_, err := b.Do(&request.Plan{Method: request.DELETE, URI: uri}, time.Second)
		assert.True(t, failure.IsConnection(err), err)
	})
	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)
		_, err := b.Do(&request.Plan{Method: request.GET, URI: srv.URL}, 50*time.Millisecond)
		assert.True(t, failure.IsTimeout(err), err)
	})
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "timeout" }
func (timeoutErr) Timeout() bool { return true }

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected failure.Kind
	}{
		{"timeout", &url.Error{Op: "Get", URL: "x", Err: timeoutErr{}}, failure.Timeout},
		{"deadline", context.DeadlineExceeded, failure.Timeout},
		{"read", &url.Error{Op: "Get", URL: "x", Err: &net.OpError{Op: "read", Err: syscall.ECONNABORTED}}, failure.Timeout},
		{"EOF", &url.Error{Op: "Get", URL: "x", Err: io.EOF}, failure.Timeout},
		{"unexpected EOF", fmt.Errorf("wrapped: %w", io.ErrUnexpectedEOF), failure.Timeout},
		{"refused", &url.Error{Op: "Get", URL: "x", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}}, failure.Connection},
		{"dial timeout", &url.Error{Op: "Get", URL: "x", Err: &net.OpError{Op: "dial", Err: timeoutErr{}}}, failure.Connection},
		{"dns", &net.DNSError{Err: "no such host", Name: "nope.invalid"}, failure.Connection},
		{"parse", &url.Error{Op: "parse", URL: "::", Err: errors.New("missing protocol scheme")}, failure.Invalid},
		{"other", errors.New("boom"), failure.Generic},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, classify(testCase.err))
		})
	}
}

func TestRestyLogger(t *testing.T) {
	var buf bytes.Buffer
	l := restyLogger{zerolog.New(&buf).Level(zerolog.DebugLevel)}
	l.Errorf("e %d", 1)
	l.Warnf("w %d", 2)
	l.Debugf("d %d", 3)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	for i, expected := range []struct{ level, msg string }{{"error", "e 1"}, {"warn", "w 2"}, {"debug", "d 3"}} {
		assert.Equal(t, expected.level, gjson.GetBytes(lines[i], "level").String())
		assert.Equal(t, expected.msg, gjson.GetBytes(lines[i], "message").String())
		assert.Equal(t, "resty", gjson.GetBytes(lines[i], "engine").String())
	}
}

func TestNew_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	b := New(WithLogger(l))
	b.logger.Info().Msg("x")
	assert.Contains(t, buf.String(), `"message":"x"`)
}
