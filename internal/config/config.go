// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads the configuration of the asynchttp command.
//
// Values are resolved, highest precedence first, from command line
// flags, ASYNCHTTP_* environment variables (including those loaded from
// a .env file), an optional YAML file, and defaults. Nested keys map to
// environment variables by replacing dots with underscores, so
// server.slow_delay is read from ASYNCHTTP_SERVER_SLOW_DELAY.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogama/asynchttp"
	"github.com/gogama/asynchttp/internal/echoserver"
	"github.com/gogama/asynchttp/internal/logger"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ASYNCHTTP"

// Config is the configuration of the asynchttp command.
type Config struct {
	Backend string        `yaml:"backend" mapstructure:"backend" validate:"required,backend"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	Output  string        `yaml:"output" mapstructure:"output" validate:"oneof=text json yaml"`

	Log    logger.Config     `yaml:"log" mapstructure:"log"`
	Server echoserver.Config `yaml:"server" mapstructure:"server"`
}

// Client returns the client part of the configuration.
func (c *Config) Client() asynchttp.Config {
	return asynchttp.Config{Backend: c.Backend, Timeout: c.Timeout}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Server.SlowDelay < 0 {
		return fmt.Errorf("config: server.slow_delay must not be negative (got: %s)", c.Server.SlowDelay)
	}
	return nil
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	configFile string
	envFile    string
	flags      *pflag.FlagSet
	bindings   map[string]string
}

// WithConfigFile sets an explicit YAML config file path. A missing
// file is an error.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path. A missing file is an
// error. Without this option, ./.env is loaded if it exists.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// WithFlags binds config keys to flags of fs. bindings maps each
// config key to a flag name. Flags which were not set on the command
// line do not override other sources.
func WithFlags(fs *pflag.FlagSet, bindings map[string]string) LoaderOption {
	return func(lc *loaderConfig) {
		lc.flags = fs
		lc.bindings = bindings
	}
}

// Load resolves, validates and returns the configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if err := loadEnvFile(lc.envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.configFile != "" {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", lc.configFile, err)
		}
	}

	for key, name := range lc.bindings {
		f := lc.flags.Lookup(name)
		if f == nil {
			return nil, fmt.Errorf("config: no flag named %q for key %s", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("config: failed to bind flag %q: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", asynchttp.DefaultBackend)
	v.SetDefault("timeout", asynchttp.DefaultTimeout)
	v.SetDefault("output", "text")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", logger.FormatConsole)
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.no_color", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.slow_delay", echoserver.DefaultSlowDelay)
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: failed to load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("config: failed to load env file .env: %w", err)
		}
	}
	return nil
}
