// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	testCases := []struct {
		line  string
		name  string
		value string
		ok    bool
	}{
		{"X-Test: test-value", "X-Test", "test-value", true},
		{"X-Test:test-value", "X-Test", "test-value", true},
		{"X-Test:  two-spaces", "X-Test", " two-spaces", true},
		{"X-Test:\ttab", "X-Test", "\ttab", true},
		{"X-Test: a: b", "X-Test", "a: b", true},
		{"X-Empty:", "X-Empty", "", true},
		{"X-Empty: ", "X-Empty", "", true},
		{":no-name", "", "no-name", true},
		{"no colon at all", "", "", false},
		{"", "", "", false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.line, func(t *testing.T) {
			name, value, ok := ParseHeader(testCase.line)
			assert.Equal(t, testCase.ok, ok)
			assert.Equal(t, testCase.name, name)
			assert.Equal(t, testCase.value, value)
		})
	}
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "X-Test: test-value", FormatHeader("X-Test", "test-value"))
	name, value, ok := ParseHeader(FormatHeader("Another-Header", "another-value"))
	assert.True(t, ok)
	assert.Equal(t, "Another-Header", name)
	assert.Equal(t, "another-value", value)
}

func TestHeaderLines(t *testing.T) {
	assert.Nil(t, HeaderLines(nil))
	assert.Nil(t, HeaderLines(http.Header{}))
	h := http.Header{
		"Content-Type": {"application/json"},
		"X-Multi":      {"one", "two"},
		"Date":         {"Mon, 02 Jan 2006 15:04:05 GMT"},
	}
	assert.Equal(t, []string{
		"Content-Type: application/json",
		"Date: Mon, 02 Jan 2006 15:04:05 GMT",
		"X-Multi: one",
		"X-Multi: two",
	}, HeaderLines(h))
}
