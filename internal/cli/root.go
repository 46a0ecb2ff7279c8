// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the asynchttp command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogama/asynchttp/internal/config"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version info reported by the version command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

type globalFlags struct {
	configFile  string
	envFile     string
	backend     string
	timeout     string
	output      string
	logLevel    string
	logFormat   string
	noColor     bool
	metricsFile string
}

// flag names bound to config keys for every command
var globalBindings = map[string]string{
	"backend":      "backend",
	"timeout":      "timeout",
	"output":       "output",
	"log.level":    "log-level",
	"log.format":   "log-format",
	"log.no_color": "no-color",
}

// NewRootCmd returns the asynchttp root command.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "asynchttp",
		Short: "Asynchronous HTTP client with pluggable backends",
		Long: `asynchttp sends HTTP requests through one of several interchangeable
client backends and prints the response.

Examples:
  asynchttp get localhost:8080/test
  asynchttp post localhost:8080/test -d '{"key":"value"}' --backend resty
  asynchttp put localhost:8080/test -d @payload.json -H "X-Trace: 1"
  asynchttp get localhost:8080/test --query received -o yaml
  asynchttp serve --addr :8080`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if g.noColor {
				color.NoColor = true
			}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configFile, "config", "c", "", "Path to YAML config file")
	pf.StringVar(&g.envFile, "env-file", "", "Path to .env file (default: ./.env if present)")
	pf.StringVarP(&g.backend, "backend", "b", "nethttp", "Client backend: nethttp, resty (env: ASYNCHTTP_BACKEND)")
	pf.StringVarP(&g.timeout, "timeout", "t", "30s", "Network timeout, 0 for none (env: ASYNCHTTP_TIMEOUT)")
	pf.StringVarP(&g.output, "output", "o", "text", "Output format: text, json, yaml (env: ASYNCHTTP_OUTPUT)")
	pf.StringVar(&g.logLevel, "log-level", "warn", "Log level (env: ASYNCHTTP_LOG_LEVEL)")
	pf.StringVar(&g.logFormat, "log-format", "console", "Log format: console, json (env: ASYNCHTTP_LOG_FORMAT)")
	pf.BoolVar(&g.noColor, "no-color", false, "Disable colored output (env: ASYNCHTTP_LOG_NO_COLOR)")
	pf.StringVar(&g.metricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")

	for _, m := range verbs {
		root.AddCommand(newRequestCmd(g, m))
	}
	root.AddCommand(newServeCmd(g))
	root.AddCommand(newBackendsCmd(g))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with args and returns the process exit
// code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var xerr *exitError
	if !errors.As(err, &xerr) {
		xerr = &exitError{code: ExitUsageError, err: err}
	}
	if xerr.err != nil {
		fmt.Fprintln(stderr, color.RedString("Error:"), xerr.err)
	}
	return xerr.code
}

func (g *globalFlags) load(cmd *cobra.Command, extra map[string]string) (*config.Config, error) {
	bindings := make(map[string]string, len(globalBindings)+len(extra))
	for k, v := range globalBindings {
		bindings[k] = v
	}
	for k, v := range extra {
		bindings[k] = v
	}
	opts := []config.LoaderOption{config.WithFlags(cmd.Flags(), bindings)}
	if g.configFile != "" {
		opts = append(opts, config.WithConfigFile(g.configFile))
	}
	if g.envFile != "" {
		opts = append(opts, config.WithEnvFile(g.envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, exit(ExitConfigError, err)
	}
	if cfg.Log.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "asynchttp %s (built %s)\n", version, buildTime)
		},
	}
}
