// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"strings"
)

// ParseHeader splits a raw header line into its name and value.
//
// The name is the text before the first colon. The value is the text
// after the first colon with exactly one leading space removed, if
// present: "X-Test: v" and "X-Test:v" both produce the value "v", but
// "X-Test:  v" produces " v".
//
// If line contains no colon, ok is false.
func ParseHeader(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	name = line[:i]
	value = strings.TrimPrefix(line[i+1:], " ")
	return name, value, true
}

// FormatHeader joins a header name and value into the raw
// "Name: Value" line form.
func FormatHeader(name, value string) string {
	return name + ": " + value
}

// HeaderLines flattens h into raw header lines, in the deterministic
// order produced by http.Header.Write: canonical names sorted, with
// each name's values in the order they were received.
func HeaderLines(h http.Header) []string {
	if len(h) == 0 {
		return nil
	}
	var b strings.Builder
	_ = h.Write(&b)
	raw := strings.Split(strings.TrimSuffix(b.String(), "\r\n"), "\r\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
