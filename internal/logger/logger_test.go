// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestConfig(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	assert.Equal(t, Config{Level: "warn", Format: FormatConsole, Output: "stderr"}, cfg)
	assert.NoError(t, cfg.Validate())

	assert.Error(t, (&Config{Level: "loud", Format: FormatJSON}).Validate())
	assert.Error(t, (&Config{Level: "info", Format: "xml"}).Validate())
	assert.NoError(t, (&Config{Level: "DEBUG", Format: "JSON"}).Validate())
}

func TestNewWithWriter(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter(Config{Level: "info", Format: FormatJSON}, &buf)
		l.Debug().Msg("hidden")
		l.Info().Str("k", "v").Msg("shown")
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		assert.Len(t, lines, 1)
		assert.Equal(t, "shown", gjson.GetBytes(lines[0], "message").String())
		assert.Equal(t, "v", gjson.GetBytes(lines[0], "k").String())
		assert.True(t, gjson.GetBytes(lines[0], "time").Exists())
	})
	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter(Config{Level: "debug", NoColor: true}, &buf)
		l.Debug().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "DBG")
	})
	t.Run("bad level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter(Config{Level: "loud", Format: FormatJSON}, &buf)
		l.Debug().Msg("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestNew_Output(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := New(Config{Level: "info", Format: FormatJSON}, &stdout, &stderr)
	l.Info().Msg("to stderr")
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "to stderr")

	stderr.Reset()
	l = New(Config{Level: "info", Format: FormatJSON, Output: "stdout"}, &stdout, &stderr)
	l.Info().Msg("to stdout")
	assert.Contains(t, stdout.String(), "to stdout")
	assert.Empty(t, stderr.String())
}
