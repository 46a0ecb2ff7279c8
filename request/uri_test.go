// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogama/asynchttp/failure"
)

func TestSplitURI(t *testing.T) {
	testCases := []struct {
		uri  string
		host string
		path string
	}{
		{"http://localhost:8080/test", "http://localhost:8080", "/test"},
		{"https://example.com/a/b?c=d#e", "https://example.com", "/a/b?c=d#e"},
		{"HTTP://EXAMPLE.COM/X", "HTTP://EXAMPLE.COM", "/X"},
		{"http://localhost:8080", "http://localhost:8080", "/"},
		{"localhost:8080/headers", "localhost:8080", "/headers"},
		{"localhost", "localhost", "/"},
		{"user:pw@host:1/", "user:pw@host:1", "/"},
		{"[::1]:8080/x", "[::1]:8080", "/x"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.uri, func(t *testing.T) {
			host, path, err := SplitURI(testCase.uri)
			assert.NoError(t, err)
			assert.Equal(t, testCase.host, host)
			assert.Equal(t, testCase.path, path)
			assert.Equal(t, testCase.uri, trimRootPath(host+path, testCase.uri))
		})
	}
	t.Run("invalid", func(t *testing.T) {
		for _, uri := range []string{"", "/only/a/path", "has space/x", "host\n/x"} {
			host, path, err := SplitURI(uri)
			assert.Empty(t, host, uri)
			assert.Empty(t, path, uri)
			assert.True(t, failure.IsInvalid(err), "%q: %v", uri, err)
		}
	})
}

// trimRootPath undoes the "/" SplitURI adds when uri has no path, so
// that host+path can be compared with the input.
func trimRootPath(joined, uri string) string {
	if joined == uri+"/" {
		return uri
	}
	return joined
}
