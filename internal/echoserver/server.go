// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package echoserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultSlowDelay is how long /slow waits before answering.
const DefaultSlowDelay = 2 * time.Second

// Config configures the echo server.
type Config struct {
	// Addr is the listen address, for example ":8080".
	Addr string `yaml:"addr" mapstructure:"addr"`
	// SlowDelay is how long /slow waits before answering. Defaults to
	// DefaultSlowDelay.
	SlowDelay time.Duration `yaml:"slow_delay" mapstructure:"slow_delay"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.SlowDelay <= 0 {
		c.SlowDelay = DefaultSlowDelay
	}
}

// NewRouter returns a gin engine serving the echo routes. Every request
// is logged to log at debug level.
func NewRouter(cfg Config, log zerolog.Logger) *gin.Engine {
	cfg.ApplyDefaults()
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	r.Any("/test", handleTest)
	r.Any("/headers", handleHeaders)
	r.Any("/echo", handleEcho)
	r.Any("/slow", handleSlow(cfg.SlowDelay))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Not found",
		})
	})
	return r
}

// Run serves the echo routes on cfg.Addr until ctx is done, then shuts
// the server down gracefully.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) error {
	cfg.ApplyDefaults()
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("echo server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("echo server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func handleTest(c *gin.Context) {
	status := http.StatusOK
	if c.Request.Method == http.MethodPost {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"status":   "success",
		"message":  c.Request.Method + " response",
		"received": jsonBody(c),
	})
}

func handleHeaders(c *gin.Context) {
	received := make(map[string]string)
	for name, values := range c.Request.Header {
		key := strings.ToLower(name)
		if strings.HasPrefix(key, "x-") || strings.HasPrefix(key, "another-") {
			received[key] = strings.Join(values, ", ")
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"headers": received,
	})
}

func handleEcho(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"received": jsonBody(c),
	})
}

func handleSlow(delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		select {
		case <-time.After(delay):
		case <-c.Request.Context().Done():
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Slow response",
		})
	}
}

// jsonBody returns the request body as raw JSON, or an empty object if
// the body is empty or not valid JSON.
func jsonBody(c *gin.Context) json.RawMessage {
	b, err := io.ReadAll(c.Request.Body)
	if err != nil || len(b) == 0 || !json.Valid(b) {
		return json.RawMessage("{}")
	}
	return json.RawMessage(b)
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("echo request")
	}
}
