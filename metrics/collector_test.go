// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/asynchttp"
	"github.com/gogama/asynchttp/failure"
	"github.com/gogama/asynchttp/request"
)

type stubBackend struct {
	status int
	err    error
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) Do(_ *request.Plan, _ time.Duration) (*request.Response, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &request.Response{StatusCode: b.status, Body: []byte{}}, nil
}

func (b *stubBackend) Close() error { return nil }

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	g := &asynchttp.HandlerGroup{}
	m.Install(g)

	ok := asynchttp.NewWithBackend(&stubBackend{status: 201}, asynchttp.Overlapped, asynchttp.WithHandlers(g))
	_, err := ok.Post("localhost/test", []byte(`{}`)).Wait()
	require.NoError(t, err)
	_, err = ok.Get("localhost/test").Wait()
	require.NoError(t, err)

	bad := asynchttp.NewWithBackend(&stubBackend{err: syscall.ECONNREFUSED}, asynchttp.Overlapped, asynchttp.WithHandlers(g))
	_, err = bad.Get("localhost/test").Wait()
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("stub", "POST", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("stub", "GET", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("stub", "GET", "connection")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsInFlight.WithLabelValues("stub")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestOutcome(t *testing.T) {
	testCases := []struct {
		name     string
		e        request.Execution
		expected string
	}{
		{"200", request.Execution{Response: &request.Response{StatusCode: 200}}, "2xx"},
		{"404", request.Execution{Response: &request.Response{StatusCode: 404}}, "4xx"},
		{"503", request.Execution{Response: &request.Response{StatusCode: 503}}, "5xx"},
		{"odd status", request.Execution{Response: &request.Response{StatusCode: 999}}, "other"},
		{"no response", request.Execution{}, "other"},
		{"timeout", request.Execution{Err: failure.New(failure.Timeout, "slow")}, "timeout"},
		{"invalid", request.Execution{Err: failure.New(failure.Invalid, "bad")}, "invalid"},
		{"unclassified", request.Execution{Err: errors.New("boom")}, "generic"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Outcome(&testCase.e))
		})
	}
}
