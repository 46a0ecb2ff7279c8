// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package echoserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRouter(t *testing.T) {
	router := NewRouter(Config{SlowDelay: 10 * time.Millisecond}, zerolog.Nop())

	serve := func(method, path, body string, header http.Header) (int, gjson.Result) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		for k, v := range header {
			req.Header[k] = v
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		return w.Code, gjson.ParseBytes(w.Body.Bytes())
	}

	t.Run("test", func(t *testing.T) {
		for _, method := range []string{"GET", "PUT", "PATCH", "DELETE"} {
			code, j := serve(method, "/test", "", nil)
			assert.Equal(t, 200, code, method)
			assert.Equal(t, "success", j.Get("status").String())
			assert.Equal(t, method+" response", j.Get("message").String())
			assert.True(t, j.Get("received").IsObject())
		}
		code, j := serve("POST", "/test", `{"key":"value"}`, nil)
		assert.Equal(t, 201, code)
		assert.Equal(t, "POST response", j.Get("message").String())
		assert.Equal(t, "value", j.Get("received.key").String())
	})
	t.Run("invalid JSON echoed as empty object", func(t *testing.T) {
		code, j := serve("POST", "/echo", `{not json`, nil)
		assert.Equal(t, 200, code)
		assert.Equal(t, "{}", j.Get("received").Raw)
	})
	t.Run("headers", func(t *testing.T) {
		code, j := serve("GET", "/headers", "", http.Header{
			"X-Custom-Header": {"test-value"},
			"Another-Header":  {"another-value"},
			"Accept":          {"text/plain"},
		})
		assert.Equal(t, 200, code)
		assert.Equal(t, "test-value", j.Get("headers.x-custom-header").String())
		assert.Equal(t, "another-value", j.Get("headers.another-header").String())
		assert.False(t, j.Get("headers.accept").Exists())
	})
	t.Run("slow", func(t *testing.T) {
		start := time.Now()
		code, j := serve("GET", "/slow", "", nil)
		assert.Equal(t, 200, code)
		assert.Equal(t, "Slow response", j.Get("message").String())
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})
	t.Run("not found", func(t *testing.T) {
		code, j := serve("GET", "/nope", "", nil)
		assert.Equal(t, 404, code)
		assert.Equal(t, "error", j.Get("status").String())
		assert.Equal(t, "Not found", j.Get("message").String())
	})
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DefaultSlowDelay, cfg.SlowDelay)
}

func TestRun(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{Addr: addr}, zerolog.Nop())
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/echo")
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	b, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "success", gjson.GetBytes(b, "status").String())

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
