// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

import (
	"fmt"
	"time"
)

// Config describes a Client in a form suitable for loading from a
// configuration file.
type Config struct {
	// Backend names the backend. Defaults to DefaultBackend.
	Backend string `yaml:"backend" mapstructure:"backend"`
	// Timeout is the initial network timeout. Defaults to
	// DefaultTimeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := registry[c.Backend]; !ok {
		return fmt.Errorf("asynchttp: backend must be one of %v (got: %q): %w",
			Backends(), c.Backend, ErrUnknownBackend)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("asynchttp: timeout must not be negative (got: %s)", c.Timeout)
	}
	return nil
}

// NewFromConfig applies defaults to cfg, validates it, and returns a
// Client built from it. Options in opts are applied after the
// configuration, so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithTimeout(cfg.Timeout))
	all = append(all, opts...)
	return New(cfg.Backend, all...)
}
